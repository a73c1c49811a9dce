package cmd

import (
	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate <plan>",
	Short: "Make a power scheme the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivate,
}

func init() {
	rootCmd.AddCommand(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	client, closer, err := buildClient()
	if err != nil {
		return err
	}
	defer closer()

	plans, err := client.ActivatePlan(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPlans(plans)
	return nil
}
