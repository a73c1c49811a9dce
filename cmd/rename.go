package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagRenameName        string
	flagRenameDescription string
)

var renameCmd = &cobra.Command{
	Use:   "rename <plan>",
	Short: "Rename a power scheme",
	Args:  cobra.ExactArgs(1),
	RunE:  runRename,
}

func init() {
	renameCmd.Flags().StringVar(&flagRenameName, "name", "", "New scheme name")
	renameCmd.Flags().StringVar(&flagRenameDescription, "description", "", "New scheme description")
	_ = renameCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	client, closer, err := buildClient()
	if err != nil {
		return err
	}
	defer closer()

	plans, err := client.RenamePlan(cmd.Context(), args[0], flagRenameName, flagRenameDescription)
	if err != nil {
		return err
	}

	printPlans(plans)
	return nil
}
