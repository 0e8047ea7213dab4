// Package cli implements the docpatch command-line surface on cobra.
//
// The CLI is a thin driving adapter: it resolves which plan runs
// against which document, invokes the PatchRunner port, and translates
// the PatchOutcome into display text and a process exit code. No patch
// logic lives here.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/docpatch-cli/internal/adapters/driven/config/file"
	sourcefile "github.com/custodia-labs/docpatch-cli/internal/adapters/driven/source/file"
	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
	"github.com/custodia-labs/docpatch-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docpatch-cli/internal/core/services"
	"github.com/custodia-labs/docpatch-cli/internal/logger"
)

// version is the CLI version, overridable at build time via -ldflags.
var version = "0.3.0"

// Exit codes. Failed outcomes distinguish a fixable anchor miss from a
// document that is not in the expected baseline shape.
const (
	ExitOK            = 0
	ExitAnchorMiss    = 1
	ExitBaselineShape = 2
)

// Services the commands run against. Wired in ensureServices; tests
// may substitute their own before calling a command.
var (
	patchRunner driving.PatchRunner
	configStore *configfile.ConfigStore
)

// Global flags.
var (
	verboseFlag bool
	patchDir    string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "docpatch",
	Short: "Idempotent anchor-based patcher for the options page and script",
	Long: `docpatch applies targeted, idempotent patches to the options page
markup (options.html) and its companion script (options.js). Each plan
locates anchors by pattern, inserts or rewrites content around them,
and recognises its own prior output so repeated runs are no-ops.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&patchDir, "dir", "d", "", "Directory holding the documents (default \".\" or patch.dir from config)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable coloured output")
}

// ensureServices wires the default filesystem-backed services. The
// config store is best-effort: a missing or unreadable config file
// only costs the overrides it would have provided.
func ensureServices(backup bool) {
	if configStore == nil {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			logger.Warn("config unavailable: %v", err)
		} else {
			configStore = store
		}
	}

	if patchRunner == nil {
		src := sourcefile.New()
		if backup {
			src = sourcefile.NewWithBackup(".bak")
		}
		patchRunner = services.NewPatchRunner(src)
	}
}

// Execute runs the root command and returns the process exit code.
// Outcome-to-code mapping lives here and nowhere else.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, domain.ErrMissingPrerequisite) {
		return ExitBaselineShape
	}
	return ExitAnchorMiss
}
