package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagDeleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <plan>",
	Short: "Delete a power scheme",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, closer, err := buildClient()
	if err != nil {
		return err
	}
	defer closer()

	if !flagDeleteYes {
		plan, err := client.ResolvePlan(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Delete power scheme %q (%s)? [y/N]: ", plan.Name, plan.ID)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}

	plans, err := client.DeletePlan(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPlans(plans)
	return nil
}
