package powercfg

import "context"

// QueryOptions scope a plan query. Empty filters mean "everything";
// non-empty filters are contains matches over display names and may select
// several subgroups or settings.
type QueryOptions struct {
	SubGroup string
	Setting  string
}

// Query drills into a plan: one /q round trip for the subgroup headers,
// then one per selected subgroup and one per selected setting. Subgroup and
// setting order follow the tool output, never alphabetic order.
func (c *Client) Query(ctx context.Context, planID string, opts QueryOptions) ([]SubGroup, error) {
	lines, err := c.run(ctx, "powercfg", "/q", planID)
	if err != nil {
		return nil, err
	}

	headers := collectHeaders(lines, lineSubGroupHeader)
	if opts.SubGroup != "" {
		headers = filterContains(headers, opts.SubGroup)
		if len(headers) == 0 {
			return nil, &NotFoundError{Query: opts.SubGroup}
		}
	}

	var groups []SubGroup
	matchedSettings := 0
	for _, h := range headers {
		group, n, err := c.querySubGroup(ctx, planID, h, opts.Setting)
		if err != nil {
			return nil, err
		}
		matchedSettings += n
		groups = append(groups, group)
	}

	if opts.Setting != "" && matchedSettings == 0 {
		return nil, &NotFoundError{Query: opts.Setting}
	}
	return groups, nil
}

// FindSetting resolves subgroup and setting queries to the single matching
// setting. Unlike Query, both names must narrow to exactly one entry.
func (c *Client) FindSetting(ctx context.Context, planID, subGroupQuery, settingQuery string) (Setting, error) {
	lines, err := c.run(ctx, "powercfg", "/q", planID)
	if err != nil {
		return Setting{}, err
	}

	group, err := resolveUnique(collectHeaders(lines, lineSubGroupHeader), subGroupQuery)
	if err != nil {
		return Setting{}, err
	}

	lines, err = c.run(ctx, "powercfg", "/q", planID, group.ID)
	if err != nil {
		return Setting{}, err
	}

	setting, err := resolveUnique(collectHeaders(lines, lineSettingHeader), settingQuery)
	if err != nil {
		return Setting{}, err
	}

	return c.querySettingDetail(ctx, planID, group.ID, setting)
}

// QuerySetting fetches one setting by its resolved identifier triple.
func (c *Client) QuerySetting(ctx context.Context, planID, subGroupID, settingID string) (Setting, error) {
	lines, err := c.run(ctx, "powercfg", "/q", planID, subGroupID, settingID)
	if err != nil {
		return Setting{}, err
	}

	header := nameID{ID: settingID}
	for _, h := range collectHeaders(lines, lineSettingHeader) {
		if h.ID == settingID {
			header = h
			break
		}
	}

	s := buildSetting(planID, subGroupID, header, parseSettingDetail(lines))
	return s, nil
}

func (c *Client) querySubGroup(ctx context.Context, planID string, group nameID, settingFilter string) (SubGroup, int, error) {
	lines, err := c.run(ctx, "powercfg", "/q", planID, group.ID)
	if err != nil {
		return SubGroup{}, 0, err
	}

	headers := filterContains(collectHeaders(lines, lineSettingHeader), settingFilter)

	sub := SubGroup{Name: group.Name, ID: group.ID, PlanID: planID}
	for _, h := range headers {
		s, err := c.querySettingDetail(ctx, planID, group.ID, h)
		if err != nil {
			return SubGroup{}, 0, err
		}
		sub.Settings = append(sub.Settings, s)
	}
	return sub, len(headers), nil
}

func (c *Client) querySettingDetail(ctx context.Context, planID, subGroupID string, header nameID) (Setting, error) {
	lines, err := c.run(ctx, "powercfg", "/q", planID, subGroupID, header.ID)
	if err != nil {
		return Setting{}, err
	}
	return buildSetting(planID, subGroupID, header, parseSettingDetail(lines)), nil
}

func buildSetting(planID, subGroupID string, header nameID, d settingDetail) Setting {
	return Setting{
		Name:       header.Name,
		ID:         header.ID,
		PlanID:     planID,
		SubGroupID: subGroupID,
		Options:    d.options,
		Range:      d.rng,
		CurrentAC:  d.ac,
		CurrentDC:  d.dc,
	}
}

// collectHeaders extracts (name, id) pairs for one header kind in order.
func collectHeaders(lines []string, kind lineKind) []nameID {
	var headers []nameID
	for _, raw := range lines {
		l := classify(raw)
		if l.kind == kind {
			headers = append(headers, nameID{Name: l.name, ID: l.id})
		}
	}
	return headers
}

type settingDetail struct {
	options []Option
	rng     *Range
	ac, dc  uint64
}

// parseSettingDetail scans a setting-scoped /q output. Two line pairings
// are stateful: an option index binds to the next friendly-name line, and a
// minimum binds to the next maximum. Current indices default to zero when
// their lines never appear.
func parseSettingDetail(lines []string) settingDetail {
	var d settingDetail
	var pendingIndex *uint64
	var pendingMin *uint64

	for _, raw := range lines {
		l := classify(raw)
		switch l.kind {
		case lineOptionIndex:
			v := l.value
			pendingIndex = &v
		case lineOptionName:
			if pendingIndex != nil {
				d.options = append(d.options, Option{Name: l.name, Index: *pendingIndex})
				pendingIndex = nil
			}
		case lineRangeMin:
			v := l.value
			pendingMin = &v
		case lineRangeMax:
			if pendingMin != nil {
				d.rng = &Range{Min: *pendingMin, Max: l.value}
				pendingMin = nil
			}
		case lineCurrentAC:
			d.ac = l.value
		case lineCurrentDC:
			d.dc = l.value
		}
	}
	return d
}
