package backfill

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

// New creates a new `backfill` command.
func New() *cobra.Command {
	var configPath, output string
	cmd := &cobra.Command{
		Use:   "backfill SLUG...",
		Short: "Sync every accepted submission for the given problems",
		Long: "Sync every accepted submission for the given problems, identified by\n" +
			"their slug (e.g. two-sum), regardless of when they were last synced.\n" +
			"This is useful for restoring problem directories that were deleted.\n" +
			"The watermark isn't changed.",
		Args: cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, slugs []string) {
			if err := run(configPath, output, slugs); err != nil {
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

func run(configPath, output string, slugs []string) error {
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
	return runBackfill(ctx, os.Stdout, cfg, syncer, slugs)
}

type backfiller interface {
	Backfill(context.Context, []string) (sync.Result, error)
}

func runBackfill(ctx context.Context, out io.Writer, cfg config.Config,
	syncer backfiller, slugs []string) error {
	res, err := syncer.Backfill(ctx, slugs)
	util.FinishRun(cfg, res, err)
	if err != nil {
		return errors.WithContext(err, "backfill")
	}

	fmt.Fprintf(out, "Synced %d submissions for %d problems (%d skipped, %d failed).\n",
		res.Written, len(slugs), res.Skipped, res.Failed)
	return nil
}
