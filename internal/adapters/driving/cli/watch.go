package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docpatch-cli/internal/logger"
	"github.com/custodia-labs/docpatch-cli/internal/plans"
)

var watchCmd = &cobra.Command{
	Use:   "watch [plan] [document]",
	Short: "Apply a plan and re-apply whenever the document changes",
	Long: `Applies the named plan once, then watches the document and re-applies
on every change until interrupted. Because plans recognise their own
output, the re-apply after docpatch's own write is a no-op, and edits
that regress the document are patched again automatically.

A failed run does not stop the watch; the document may simply be
mid-edit.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ensureServices(false)

	plan, err := plans.Get(args[0])
	if err != nil {
		return err
	}
	uri := resolveDocument(plan.Name, plan.DocumentName, args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors commonly
	// replace files on save, which drops a file-level watch.
	dir := filepath.Dir(uri)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// Collapse editor save storms into one run per interval.
	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)

	apply := func() {
		report, err := patchRunner.Run(ctx, plan, uri)
		if err != nil {
			cmd.Println(styled(failedStyle, fmt.Sprintf("failed: %s -> %s: %v", plan.Name, uri, err)))
			return
		}
		printReport(cmd, report)
	}

	apply()
	cmd.Printf("Watching %s for changes (Ctrl-C to stop)...\n", uri)

	target := filepath.Clean(uri)
	for {
		select {
		case <-ctx.Done():
			cmd.Println("Watch stopped.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !limiter.Allow() {
				logger.Debug("watch: change on %s throttled", event.Name)
				continue
			}
			logger.Debug("watch: change on %s (%s)", event.Name, event.Op)
			apply()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
