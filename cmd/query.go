package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsforge-io/powerplan/internal/powercfg"
)

var (
	flagQuerySubGroup string
	flagQuerySetting  string
)

var queryCmd = &cobra.Command{
	Use:   "query [plan]",
	Short: "Show subgroups and settings of a power scheme",
	Long: `Drill into a power scheme. With no plan argument the active scheme is
queried. --subgroup and --setting narrow the output by substring match on
display names; a filter matching several entries shows all of them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&flagQuerySubGroup, "subgroup", "", "Subgroup name filter")
	queryCmd.Flags().StringVar(&flagQuerySetting, "setting", "", "Setting name filter")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	client, closer, err := buildClient()
	if err != nil {
		return err
	}
	defer closer()

	planQuery := ""
	if len(args) == 1 {
		planQuery = args[0]
	}

	plan, err := client.ResolvePlan(cmd.Context(), planQuery)
	if err != nil {
		return err
	}

	groups, err := client.Query(cmd.Context(), plan.ID, powercfg.QueryOptions{
		SubGroup: flagQuerySubGroup,
		Setting:  flagQuerySetting,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(groups, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Plan: %s (%s)\n", plan.Name, plan.ID)
	for _, g := range groups {
		fmt.Printf("\n%s (%s)\n", g.Name, g.ID)
		for _, s := range g.Settings {
			printSetting(s)
		}
	}
	return nil
}

func printSetting(s powercfg.Setting) {
	fmt.Printf("  %s (%s)\n", s.Name, s.ID)
	if s.Range != nil {
		fmt.Printf("    range: %d - %d\n", s.Range.Min, s.Range.Max)
	}
	for _, o := range s.Options {
		fmt.Printf("    [%d] %s\n", o.Index, o.Name)
	}
	fmt.Printf("    AC: %d  DC: %d\n", s.CurrentAC, s.CurrentDC)
}
