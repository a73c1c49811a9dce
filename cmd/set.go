package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opsforge-io/powerplan/internal/powercfg"
)

var (
	flagSetPlan     string
	flagSetSubGroup string
	flagSetSetting  string
	flagSetValue    uint64
	flagSetAC       bool
	flagSetDC       bool
	flagSetYes      bool
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Write a setting value",
	Long: `Write a setting's index or value for the AC (plugged in) and/or DC
(battery) power state. At least one of --ac/--dc is required. Each state is
confirmed interactively unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&flagSetPlan, "plan", "", "Plan name (default: active plan)")
	setCmd.Flags().StringVar(&flagSetSubGroup, "subgroup", "", "Subgroup name (must match exactly one)")
	setCmd.Flags().StringVar(&flagSetSetting, "setting", "", "Setting name (must match exactly one)")
	setCmd.Flags().Uint64Var(&flagSetValue, "value", 0, "New index or value")
	setCmd.Flags().BoolVar(&flagSetAC, "ac", false, "Apply to the AC power state")
	setCmd.Flags().BoolVar(&flagSetDC, "dc", false, "Apply to the DC power state")
	setCmd.Flags().BoolVarP(&flagSetYes, "yes", "y", false, "Skip confirmation prompts")
	_ = setCmd.MarkFlagRequired("subgroup")
	_ = setCmd.MarkFlagRequired("setting")
	_ = setCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	client, closer, err := buildClient()
	if err != nil {
		return err
	}
	defer closer()

	plan, err := client.ResolvePlan(cmd.Context(), flagSetPlan)
	if err != nil {
		return err
	}

	setting, err := client.FindSetting(cmd.Context(), plan.ID, flagSetSubGroup, flagSetSetting)
	if err != nil {
		return err
	}

	req := powercfg.WriteRequest{
		PlanID:     plan.ID,
		SubGroupID: setting.SubGroupID,
		SettingID:  setting.ID,
		Value:      flagSetValue,
		ApplyAC:    flagSetAC,
		ApplyDC:    flagSetDC,
	}
	if !flagSetYes {
		req.Confirm = confirmWrite(setting.Name, flagSetValue)
	}

	fresh, err := client.SetValue(cmd.Context(), req)
	if err != nil {
		return err
	}

	printSetting(fresh)
	return nil
}

// confirmWrite prompts per power state; declining a state skips its write.
func confirmWrite(name string, value uint64) func(state string) bool {
	reader := bufio.NewReader(os.Stdin)
	return func(state string) bool {
		fmt.Printf("Set %s value of %q to %d? [y/N]: ", state, name, value)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
