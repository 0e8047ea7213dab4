package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
	"github.com/custodia-labs/docpatch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docpatch-cli/internal/diffview"
	"github.com/custodia-labs/docpatch-cli/internal/plans"
)

var applyCmd = &cobra.Command{
	Use:   "apply [plan] [document]",
	Short: "Apply a patch plan to its document",
	Long: `Applies the named plan. The document defaults to the plan's standard
file inside the patch directory; an explicit document argument or a
plan.<name>.document config override takes precedence.

The document is only rewritten when the plan actually applies: an
already-applied or failed run writes nothing.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runApply,
}

// Apply flags.
var (
	dryRunFlag bool
	diffFlag   bool
	backupFlag bool
)

func init() {
	applyCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Resolve and apply in memory, but never write")
	applyCmd.Flags().BoolVar(&diffFlag, "diff", false, "Print a line diff of the resulting change")
	applyCmd.Flags().BoolVarP(&backupFlag, "backup", "b", false, "Keep the previous content in <document>.bak")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	ensureServices(backupFlag)

	plan, err := plans.Get(args[0])
	if err != nil {
		return err
	}

	uri := resolveDocument(plan.Name, plan.DocumentName, args)
	ctx := context.Background()

	var report *driving.RunReport
	if dryRunFlag {
		report, err = patchRunner.DryRun(ctx, plan, uri)
	} else {
		report, err = patchRunner.Run(ctx, plan, uri)
	}
	if err != nil {
		return err
	}

	if diffFlag && report.Outcome.Status == domain.StatusApplied {
		cmd.Print(diffview.Unified(report.Before, report.After))
	}

	printReport(cmd, report)

	if report.Outcome.Status == domain.StatusFailed {
		return report.Outcome.Err
	}
	return nil
}

// resolveDocument picks the document path for a plan: the explicit
// argument wins, then a config override, then the plan's default name,
// the latter two inside the patch directory.
func resolveDocument(planName, defaultName string, args []string) string {
	if len(args) > 1 {
		return args[1]
	}

	name := defaultName
	if configStore != nil {
		if override := configStore.GetString("plan." + planName + ".document"); override != "" {
			name = override
		}
	}

	dir := patchDir
	if dir == "" && configStore != nil {
		dir = configStore.GetString("patch.dir")
	}
	if dir == "" {
		dir = "."
	}

	return filepath.Join(dir, name)
}

// printReport writes the one-line outcome for a run.
func printReport(cmd *cobra.Command, report *driving.RunReport) {
	switch report.Outcome.Status {
	case domain.StatusApplied:
		suffix := ""
		if !report.Written {
			suffix = " (dry run, not written)"
		}
		cmd.Println(styled(appliedStyle, fmt.Sprintf("patched: %s -> %s%s", report.Plan, report.URI, suffix)))
	case domain.StatusAlreadyApplied:
		cmd.Println(styled(noopStyle, fmt.Sprintf("already applied: %s -> %s, no changes made", report.Plan, report.URI)))
	case domain.StatusFailed:
		msg := fmt.Sprintf("failed: %s -> %s: %v", report.Plan, report.URI, report.Outcome.Err)
		if report.Outcome.Directive >= 0 {
			msg = fmt.Sprintf("%s (directive %d)", msg, report.Outcome.Directive)
		}
		cmd.Println(styled(failedStyle, msg))
	}
}
