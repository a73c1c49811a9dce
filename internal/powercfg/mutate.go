package powercfg

import (
	"context"
	"fmt"
)

// ActivatePlan makes the plan matching query the active scheme and returns
// the refreshed plan table.
func (c *Client) ActivatePlan(ctx context.Context, query string) ([]Plan, error) {
	plan, err := c.ResolvePlan(ctx, query)
	if err != nil {
		return nil, err
	}
	if _, err := c.run(ctx, "powercfg", "/s", plan.ID); err != nil {
		return nil, err
	}
	return c.ListPlans(ctx)
}

// DeletePlan removes the plan matching query and returns the refreshed
// plan table, now without the deleted plan.
func (c *Client) DeletePlan(ctx context.Context, query string) ([]Plan, error) {
	plan, err := c.ResolvePlan(ctx, query)
	if err != nil {
		return nil, err
	}
	if _, err := c.run(ctx, "powercfg", "/d", plan.ID); err != nil {
		return nil, err
	}
	return c.ListPlans(ctx)
}

// DuplicatePlan copies the plan matching query and renames the copy to
// "<original name>-Copy". powercfg does not report the new scheme id, so
// the copy is found by diffing the plan table before and after. The two
// steps are not atomic: a concurrent scheme created by another actor makes
// the diff ambiguous, and the duplicate is then left in place unrenamed.
func (c *Client) DuplicatePlan(ctx context.Context, query string) ([]Plan, error) {
	before, err := c.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := resolvePlan(before, query)
	if err != nil {
		return nil, err
	}

	if _, err := c.run(ctx, "powercfg", "/duplicatescheme", plan.ID); err != nil {
		return nil, err
	}

	after, err := c.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	created := newPlanIDs(before, after)
	if len(created) != 1 {
		return nil, fmt.Errorf("expected one new scheme after duplicating %q, found %d", plan.Name, len(created))
	}

	if _, err := c.run(ctx, "powercfg", "/changename", created[0], plan.Name+"-Copy"); err != nil {
		return nil, err
	}
	return c.ListPlans(ctx)
}

// RenamePlan renames the plan matching query, optionally setting its
// description, and returns the refreshed plan table.
func (c *Client) RenamePlan(ctx context.Context, query, newName, description string) ([]Plan, error) {
	plan, err := c.ResolvePlan(ctx, query)
	if err != nil {
		return nil, err
	}

	args := []string{"powercfg", "/changename", plan.ID, newName}
	if description != "" {
		args = append(args, description)
	}
	if _, err := c.run(ctx, args...); err != nil {
		return nil, err
	}
	return c.ListPlans(ctx)
}

// newPlanIDs returns ids present in after but not in before, in after's
// order.
func newPlanIDs(before, after []Plan) []string {
	known := make(map[string]bool, len(before))
	for _, p := range before {
		known[p.ID] = true
	}

	var created []string
	for _, p := range after {
		if !known[p.ID] {
			created = append(created, p.ID)
		}
	}
	return created
}
