package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docpatch-cli/internal/plans"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the available patch plans",
	Run:   runPlans,
}

func init() {
	rootCmd.AddCommand(plansCmd)
}

func runPlans(cmd *cobra.Command, _ []string) {
	cmd.Println("Available plans:")
	cmd.Println()
	for _, p := range plans.All() {
		cmd.Printf("  %-20s %s\n", p.Name, p.DocumentName)
		cmd.Printf("  %-20s %s\n", "", p.Summary)
		cmd.Println()
	}
}
