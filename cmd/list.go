package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opsforge-io/powerplan/internal/powercfg"
)

var flagNoDescriptions bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List power schemes",
	Long:  `Display every power scheme on the target host, marking the active one.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagNoDescriptions, "no-descriptions", false, "Skip the Win32_PowerPlan description lookup")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	runner, closer, err := buildRunner()
	if err != nil {
		return err
	}
	defer closer()

	client := powercfg.NewClient(runner)
	if !flagNoDescriptions {
		client.Descriptions = powercfg.CIMDescriptionSource{Runner: runner}
	}
	plans, err := client.ListPlans(cmd.Context())
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(plans, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printPlans(plans)
	return nil
}

func printPlans(plans []powercfg.Plan) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACTIVE\tNAME\tGUID\tDESCRIPTION")
	for _, p := range plans {
		active := ""
		if p.Active {
			active = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", active, p.Name, p.ID, p.Description)
	}
	w.Flush()
}
