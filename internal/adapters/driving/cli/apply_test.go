package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/custodia-labs/docpatch-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docpatch-cli/internal/adapters/driven/source/memory"
	"github.com/custodia-labs/docpatch-cli/internal/core/services"
)

// A script whose boot call is stale: init() exists but the trailing
// call still names the removed load() function.
const staleBootScript = `function init() {
    restoreOptions();
}

load();
`

// setupTestServices swaps in an in-memory document source and an
// isolated config store, and returns the source plus a cleanup that
// restores package state, flags included.
func setupTestServices(t *testing.T) (*memory.Source, func()) {
	t.Helper()

	oldRunner := patchRunner
	oldStore := configStore

	src := memory.New()
	patchRunner = services.NewPatchRunner(src)

	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store

	return src, func() {
		patchRunner = oldRunner
		configStore = oldStore
		dryRunFlag = false
		diffFlag = false
		backupFlag = false
		verboseFlag = false
		noColorFlag = false
		patchDir = ""
	}
}

func TestApplyCmd_Use(t *testing.T) {
	assert.Equal(t, "apply [plan] [document]", applyCmd.Use)
}

func TestApplyCmd_Short(t *testing.T) {
	assert.Equal(t, "Apply a patch plan to its document", applyCmd.Short)
}

func TestApplyCmd_RequiresPlanArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts between 1 and 2 arg(s)")
}

func TestApplyCmd_HasDryRunFlag(t *testing.T) {
	flag := applyCmd.Flags().Lookup("dry-run")
	require.NotNil(t, flag, "dry-run flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestApplyCmd_HasBackupFlag(t *testing.T) {
	flag := applyCmd.Flags().Lookup("backup")
	require.NotNil(t, flag, "backup flag should exist")
	assert.Equal(t, "b", flag.Shorthand)
}

func TestApplyCmd_HasDiffFlag(t *testing.T) {
	flag := applyCmd.Flags().Lookup("diff")
	require.NotNil(t, flag, "diff flag should exist")
}

func TestApplyCmd_UnknownPlan(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "no-such-plan"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-plan")
}

func TestApplyCmd_PatchesDocument(t *testing.T) {
	src, cleanup := setupTestServices(t)
	defer cleanup()
	src.Put("options.js", staleBootScript)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "fix-options-boot", "options.js"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "patched: fix-options-boot -> options.js")

	text, readErr := src.ReadText(context.Background(), "options.js")
	require.NoError(t, readErr)
	assert.Contains(t, text, "init();")
	assert.NotContains(t, text, "load();")
}

func TestApplyCmd_SecondRunIsNoop(t *testing.T) {
	src, cleanup := setupTestServices(t)
	defer cleanup()
	src.Put("options.js", staleBootScript)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"apply", "fix-options-boot", "options.js"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "already applied: fix-options-boot -> options.js")
}

func TestApplyCmd_DryRunDoesNotWrite(t *testing.T) {
	src, cleanup := setupTestServices(t)
	defer cleanup()
	src.Put("options.js", staleBootScript)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "--dry-run", "fix-options-boot", "options.js"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "(dry run, not written)")

	text, readErr := src.ReadText(context.Background(), "options.js")
	require.NoError(t, readErr)
	assert.Equal(t, staleBootScript, text, "dry run must leave the document untouched")
}

func TestApplyCmd_DiffFlagPrintsChange(t *testing.T) {
	src, cleanup := setupTestServices(t)
	defer cleanup()
	src.Put("options.js", staleBootScript)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "--diff", "fix-options-boot", "options.js"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "- load();")
	assert.Contains(t, buf.String(), "+ init();")
}

func TestApplyCmd_MissingPrerequisite(t *testing.T) {
	src, cleanup := setupTestServices(t)
	defer cleanup()
	// Calls load() but defines no init() to redirect to.
	src.Put("options.js", "restoreOptions();\nload();\n")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "fix-options-boot", "options.js"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "init() definition")
	assert.Contains(t, buf.String(), "failed: fix-options-boot -> options.js")
}

func TestApplyCmd_AnchorMissReportsDirective(t *testing.T) {
	src, cleanup := setupTestServices(t)
	defer cleanup()
	// Has a <head> but none of the client-name anchors.
	src.Put("options.html", "<html><head></head><body></body></html>")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "add-client-boxes", "options.html"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, buf.String(), "(directive 1)")
}

func TestApplyCmd_MissingDocument(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "fix-options-boot", "missing.js"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")
}

// resolveDocument tests

func TestResolveDocument_ExplicitArgWins(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	patchDir = "ignored"

	got := resolveDocument("fix-options-boot", "options.js", []string{"fix-options-boot", "/tmp/custom.js"})

	assert.Equal(t, "/tmp/custom.js", got)
}

func TestResolveDocument_DefaultsToPlanDocument(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	got := resolveDocument("fix-options-boot", "options.js", []string{"fix-options-boot"})

	assert.Equal(t, "options.js", got)
}

func TestResolveDocument_DirFlag(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	patchDir = "extension"

	got := resolveDocument("fix-options-boot", "options.js", []string{"fix-options-boot"})

	assert.Equal(t, "extension/options.js", got)
}

func TestResolveDocument_ConfigDocumentOverride(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, configStore.Set("plan.fix-options-boot.document", "options.dev.js"))

	got := resolveDocument("fix-options-boot", "options.js", []string{"fix-options-boot"})

	assert.Equal(t, "options.dev.js", got)
}

func TestResolveDocument_ConfigDir(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, configStore.Set("patch.dir", "ext"))

	got := resolveDocument("fix-options-boot", "options.js", []string{"fix-options-boot"})

	assert.Equal(t, "ext/options.js", got)
}

func TestResolveDocument_DirFlagBeatsConfigDir(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	require.NoError(t, configStore.Set("patch.dir", "from-config"))
	patchDir = "from-flag"

	got := resolveDocument("fix-options-boot", "options.js", []string{"fix-options-boot"})

	assert.Equal(t, "from-flag/options.js", got)
}
