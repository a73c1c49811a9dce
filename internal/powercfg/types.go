// Package powercfg drives the Windows powercfg utility and turns its
// line-oriented output into typed power scheme snapshots.
//
// All entities are read-only snapshots rebuilt on every query; nothing is
// cached between calls. After a write the pre-write Setting is stale and a
// fresh one is returned from a re-query.
package powercfg

// Plan is one power scheme as reported by `powercfg /l`.
type Plan struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ID          string `json:"id"`
	Active      bool   `json:"active"`
}

// SubGroup is one settings category within a plan.
// Settings keeps the order powercfg printed them in.
type SubGroup struct {
	Name     string    `json:"name"`
	ID       string    `json:"id"`
	PlanID   string    `json:"planId"`
	Settings []Setting `json:"settings"`
}

// Setting is a single tunable value with independent AC and DC indices.
// Options is nil for non-enumerated settings, Range is nil for non-ranged
// ones; powercfg does not promise the two are exclusive, so neither do we.
type Setting struct {
	Name       string   `json:"name"`
	ID         string   `json:"id"`
	PlanID     string   `json:"planId"`
	SubGroupID string   `json:"subGroupId"`
	Options    []Option `json:"options,omitempty"`
	Range      *Range   `json:"range,omitempty"`
	CurrentAC  uint64   `json:"currentAc"`
	CurrentDC  uint64   `json:"currentDc"`
}

// Option is one enumerated choice of a setting.
type Option struct {
	Name  string `json:"name"`
	Index uint64 `json:"index"`
}

// Range bounds a numeric setting.
type Range struct {
	Min uint64 `json:"min"`
	Max uint64 `json:"max"`
}

// Option returns the index bound to a friendly name.
func (s Setting) Option(name string) (uint64, bool) {
	for _, o := range s.Options {
		if o.Name == name {
			return o.Index, true
		}
	}
	return 0, false
}
