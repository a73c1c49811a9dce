package powercfg

import "context"

// bannerLines is the fixed listing preamble powercfg prints before the
// first scheme row: header, underline, blank.
const bannerLines = 3

// ListPlans runs `powercfg /l` and builds the plan table. When a
// description source is configured it enriches matching plans; enrichment
// failure never fails the listing.
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	lines, err := c.run(ctx, "powercfg", "/l")
	if err != nil {
		return nil, err
	}

	plans := parsePlanList(lines)

	if c.Descriptions != nil {
		desc, err := c.Descriptions.Descriptions(ctx)
		if err != nil {
			c.log.Debug("description lookup failed", "error", err)
		} else {
			for i := range plans {
				if d, ok := desc[plans[i].Name]; ok {
					plans[i].Description = d
				}
			}
		}
	}

	return plans, nil
}

// parsePlanList turns raw listing lines into Plans, preserving row order.
// Rows without a recognizable GUID and parenthesized name are dropped.
func parsePlanList(lines []string) []Plan {
	if len(lines) < bannerLines {
		return nil
	}

	var plans []Plan
	for _, raw := range lines[bannerLines:] {
		l := classify(raw)
		if l.kind != linePlan {
			continue
		}
		plans = append(plans, Plan{
			Name:   l.name,
			ID:     l.id,
			Active: l.active,
		})
	}
	return plans
}

// ResolvePlan finds the single plan matching query. An empty query means
// the currently active plan; this default exists only at the plan level.
func (c *Client) ResolvePlan(ctx context.Context, query string) (Plan, error) {
	plans, err := c.ListPlans(ctx)
	if err != nil {
		return Plan{}, err
	}
	return resolvePlan(plans, query)
}

func resolvePlan(plans []Plan, query string) (Plan, error) {
	if query == "" {
		for _, p := range plans {
			if p.Active {
				return p, nil
			}
		}
		return Plan{}, &NotFoundError{Query: "(active plan)"}
	}

	cands := make([]nameID, len(plans))
	for i, p := range plans {
		cands[i] = nameID{Name: p.Name, ID: p.ID}
	}
	match, err := resolveUnique(cands, query)
	if err != nil {
		return Plan{}, err
	}
	for _, p := range plans {
		if p.ID == match.ID {
			return p, nil
		}
	}
	return Plan{}, &NotFoundError{Query: query}
}
