package powercfg

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery_FullPlan(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	groups, err := client.Query(context.Background(), planBalanced, QueryOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []SubGroup{
		{
			Name: "Sleep", ID: subSleep, PlanID: planBalanced,
			Settings: []Setting{
				{
					Name: "Sleep after", ID: setSleep, PlanID: planBalanced, SubGroupID: subSleep,
					Range:     &Range{Min: 0, Max: 0xffffffff},
					CurrentAC: 900, CurrentDC: 600,
				},
				{
					Name: "Allow hybrid sleep", ID: setHybrid, PlanID: planBalanced, SubGroupID: subSleep,
					Options:   []Option{{Name: "Off", Index: 0}, {Name: "On", Index: 1}},
					CurrentAC: 1, CurrentDC: 0,
				},
			},
		},
		{
			Name: "Display", ID: subDisplay, PlanID: planBalanced,
			Settings: []Setting{
				{
					Name: "Turn off display after", ID: setTurnOff, PlanID: planBalanced, SubGroupID: subDisplay,
					Range:     &Range{Min: 0, Max: 0xffffffff},
					CurrentAC: 300, CurrentDC: 60,
				},
			},
		},
	}

	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("query result mismatch (-want +got):\n%s", diff)
	}

	// Sleep appears before Display because the tool printed it first,
	// not because of any sorting.
	if groups[0].Name != "Sleep" {
		t.Errorf("subgroup order not preserved: %+v", groups)
	}
}

func TestQuery_RoundTripCount(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	if _, err := client.Query(context.Background(), planBalanced, QueryOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One plan query, one per subgroup (2), one per setting (3).
	if len(runner.calls) != 6 {
		t.Errorf("expected 6 round trips, got %d: %v", len(runner.calls), runner.calls)
	}
}

func TestQuery_SubGroupFilter(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	groups, err := client.Query(context.Background(), planBalanced, QueryOptions{SubGroup: "Disp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != subDisplay {
		t.Fatalf("expected only Display, got %+v", groups)
	}

	for _, call := range runner.calls {
		if strings.Contains(call, subSleep) {
			t.Errorf("filtered-out subgroup should not be queried: %q", call)
		}
	}
}

func TestQuery_SubGroupFilterNotFound(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	_, err := client.Query(context.Background(), planBalanced, QueryOptions{SubGroup: "Graphics"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestQuery_SettingFilter(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	groups, err := client.Query(context.Background(), planBalanced, QueryOptions{Setting: "hybrid"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both subgroups are returned; only Sleep has a matching setting.
	if len(groups) != 2 {
		t.Fatalf("expected 2 subgroups, got %d", len(groups))
	}
	if len(groups[0].Settings) != 1 || groups[0].Settings[0].ID != setHybrid {
		t.Errorf("Sleep should contain only the hybrid setting: %+v", groups[0].Settings)
	}
	if len(groups[1].Settings) != 0 {
		t.Errorf("Display should have no settings under this filter: %+v", groups[1].Settings)
	}
}

func TestQuery_SettingFilterNotFound(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	_, err := client.Query(context.Background(), planBalanced, QueryOptions{Setting: "Dimmed brightness"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestFindSetting(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	setting, err := client.FindSetting(context.Background(), planBalanced, "Sle", "hybrid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setting.ID != setHybrid || setting.SubGroupID != subSleep {
		t.Errorf("unexpected setting: %+v", setting)
	}
	if got, ok := setting.Option("On"); !ok || got != 1 {
		t.Errorf("expected option On = 1, got %d %v", got, ok)
	}
}

func TestFindSetting_AmbiguousSubGroup(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	// Both "Sleep" and "Display" contain "l".
	_, err := client.FindSetting(context.Background(), planBalanced, "l", "hybrid")
	var amb *AmbiguousMatchError
	if !errors.As(err, &amb) {
		t.Fatalf("expected *AmbiguousMatchError, got %v", err)
	}
	if amb.Matches != 2 {
		t.Errorf("expected 2 matches, got %d", amb.Matches)
	}
}

func TestQuerySetting_ByID(t *testing.T) {
	runner := balancedQueryRunner(t)
	client := NewClient(runner)

	setting, err := client.QuerySetting(context.Background(), planBalanced, subSleep, setSleep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if setting.Name != "Sleep after" {
		t.Errorf("name should come from the scoped query output, got %q", setting.Name)
	}
	if setting.CurrentAC != 900 || setting.CurrentDC != 600 {
		t.Errorf("unexpected current values: %+v", setting)
	}
}

func TestParseSettingDetail_Pairings(t *testing.T) {
	t.Run("orphan friendly name is ignored", func(t *testing.T) {
		d := parseSettingDetail([]string{
			"      Possible Setting Friendly Name: Off",
			"      Possible Setting Index: 001",
			"      Possible Setting Friendly Name: On",
		})
		want := []Option{{Name: "On", Index: 1}}
		if diff := cmp.Diff(want, d.options); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("minimum without maximum yields no range", func(t *testing.T) {
		d := parseSettingDetail([]string{
			"      Minimum Possible Setting: 0x00000000",
		})
		if d.rng != nil {
			t.Errorf("expected nil range, got %+v", d.rng)
		}
	})

	t.Run("current values default to zero", func(t *testing.T) {
		d := parseSettingDetail([]string{"noise"})
		if d.ac != 0 || d.dc != 0 {
			t.Errorf("expected zero defaults, got ac=%d dc=%d", d.ac, d.dc)
		}
	})
}
