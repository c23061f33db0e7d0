package sync

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sidkik/leetsync/cmd/util"
	"github.com/sidkik/leetsync/pkg/config"
	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/sync"
)

const help = `Mirror your accepted LeetCode submissions into a local directory.

Each problem gets its own directory under problems/, containing a README.md
with the problem statement and one solution file per accepted submission.
Only submissions newer than the last completed sync are fetched. The
timestamp of the newest synced submission is stored in the watermark file,
and is only updated once the sync completes. Interrupted syncs are safe to
rerun.

Credentials are read from the LEETCODE_SESSION and LEETCODE_CSRF_TOKEN
environment variables, or from a .env file in the working directory.

Running two syncs into the same directory at the same time isn't supported.
It's up to the caller to prevent overlapping runs, for example with flock(1)
when running from cron.`

// New creates a new `sync` command.
func New() *cobra.Command {
	var configPath, output string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync new accepted submissions into the output directory",
		Long:  help,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if err := run(configPath, output); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "",
		"The path to the leetsync config. Defaults to ~/.leetsync.yaml.")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"The directory to sync into. Overrides the config file.")
	return cmd
}

func run(configPath, output string) error {
	cfg, err := util.ParseConfig(configPath, output)
	if err != nil {
		return err
	}

	syncer, err := util.NewSyncer(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := util.SignalContext()
	defer cancel()
	return runSync(ctx, os.Stdout, cfg, syncer)
}

type runner interface {
	Run(context.Context) (sync.Result, error)
}

func runSync(ctx context.Context, out io.Writer, cfg config.Config, syncer runner) error {
	res, err := syncer.Run(ctx)
	util.FinishRun(cfg, res, err)
	if err != nil {
		return errors.WithContext(err, "sync")
	}

	fmt.Fprintf(out, "Synced %d new submissions for %s (%d skipped, %d failed).\n",
		res.Written, res.Username, res.Skipped, res.Failed)
	return nil
}
