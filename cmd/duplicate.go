package cmd

import (
	"github.com/spf13/cobra"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <plan>",
	Short: "Copy a power scheme",
	Long: `Duplicate a power scheme and name the copy "<original>-Copy". powercfg
does not report the new scheme id, so the copy is identified by listing
schemes before and after; a scheme created concurrently by another actor
makes that ambiguous and the command fails with the copy left unrenamed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDuplicate,
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	client, closer, err := buildClient()
	if err != nil {
		return err
	}
	defer closer()

	plans, err := client.DuplicatePlan(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPlans(plans)
	return nil
}
