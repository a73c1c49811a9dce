package powercfg

import (
	"context"
	"strconv"
)

// WriteRequest describes one value write against a resolved
// (plan, subgroup, setting) identifier triple.
type WriteRequest struct {
	PlanID     string
	SubGroupID string
	SettingID  string
	Value      uint64

	// At least one power state must be selected.
	ApplyAC bool
	ApplyDC bool

	// Confirm, when set, is asked per selected state ("AC", "DC") whether
	// the write should actually happen. A declined state issues no
	// command. Nil confirms everything.
	Confirm func(state string) bool
}

// SetValue writes the requested value for each selected and confirmed
// power state, then re-queries the setting and returns the fresh snapshot.
// The tool is the sole source of truth: the pre-write Setting is never
// updated in place. When every state is declined no write command runs and
// the returned Setting reflects the untouched current state.
func (c *Client) SetValue(ctx context.Context, req WriteRequest) (Setting, error) {
	if !req.ApplyAC && !req.ApplyDC {
		return Setting{}, &ValidationError{Reason: "neither AC nor DC selected for write"}
	}

	value := strconv.FormatUint(req.Value, 10)

	if req.ApplyAC && req.confirmed("AC") {
		_, err := c.run(ctx, "powercfg", "/setacvalueindex", req.PlanID, req.SubGroupID, req.SettingID, value)
		if err != nil {
			return Setting{}, err
		}
	}
	if req.ApplyDC && req.confirmed("DC") {
		_, err := c.run(ctx, "powercfg", "/setdcvalueindex", req.PlanID, req.SubGroupID, req.SettingID, value)
		if err != nil {
			return Setting{}, err
		}
	}

	return c.QuerySetting(ctx, req.PlanID, req.SubGroupID, req.SettingID)
}

func (req WriteRequest) confirmed(state string) bool {
	return req.Confirm == nil || req.Confirm(state)
}
