package problems

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/buger/goterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sidkik/leetsync/cmd/util"
	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/leetcode"
	"github.com/sidkik/leetsync/pkg/sync"
)

const (
	// DefaultCategory lists problems of every kind.
	DefaultCategory = "all-code-essentials"

	defaultPageSize = 100
)

// New creates a new `problems` command.
func New() *cobra.Command {
	var configPath, category string
	var pageSize int
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "List the problems on LeetCode",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if err := run(configPath, category, pageSize); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "",
		"The path to the leetsync config. Defaults to ~/.leetsync.yaml.")
	cmd.Flags().StringVar(&category, "category", DefaultCategory,
		"The problem category to list, such as algorithms or database.")
	cmd.Flags().IntVar(&pageSize, "page-size", defaultPageSize,
		"The number of problems requested at a time.")
	return cmd
}

func run(configPath, category string, pageSize int) error {
	cfg, err := util.ParseConfig(configPath, "")
	if err != nil {
		return err
	}

	client, err := util.NewClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := util.SignalContext()
	defer cancel()

	return list(ctx, os.Stdout, client, util.NewPacer(cfg), category, pageSize)
}

// list prints every problem in `category`. It pages through the problemset
// until it gets an empty page.
func list(ctx context.Context, out io.Writer, client leetcode.Client, pacer sync.Pauser,
	category string, pageSize int) error {

	table := goterm.NewTable(0, 10, 2, ' ', 0)
	fmt.Fprintln(table, "ID\tTITLE\tSLUG\tDIFFICULTY")

	var total int
	for skip := 0; ; {
		page, err := fetchPage(ctx, client, pacer, category, skip, pageSize)
		if err != nil {
			return errors.WithContext(err, "list problems")
		}

		if len(page.Problems) == 0 {
			break
		}

		for _, p := range page.Problems {
			title := p.Title
			if p.PaidOnly {
				title += " (premium)"
			}
			fmt.Fprintf(table, "%s\t%s\t%s\t%s\n",
				p.FrontendID, title, p.TitleSlug, difficultyString(p.Difficulty))
		}
		total += len(page.Problems)
		skip += len(page.Problems)
	}

	fmt.Fprint(out, table.String())
	fmt.Fprintf(out, "\n%d problems\n", total)
	return nil
}

// fetchPage fetches the page at `skip`, retrying transient failures until it
// succeeds. Every attempt is followed by a pause.
func fetchPage(ctx context.Context, client leetcode.Client, pacer sync.Pauser,
	category string, skip, pageSize int) (leetcode.ProblemList, error) {
	for {
		page, err := client.ListProblems(ctx, category, skip, pageSize)
		if ctx.Err() != nil {
			return leetcode.ProblemList{}, ctx.Err()
		}

		if pauseErr := pacer.Pause(ctx); pauseErr != nil {
			return leetcode.ProblemList{}, pauseErr
		}

		if err == nil || !errors.IsTransient(err) {
			return page, err
		}

		log.WithError(err).WithField("skip", skip).Warn(
			"Failed to fetch problems. Retrying.")
	}
}

func difficultyString(difficulty string) string {
	switch difficulty {
	case "Easy":
		return goterm.Color(difficulty, goterm.GREEN)
	case "Medium":
		return goterm.Color(difficulty, goterm.YELLOW)
	case "Hard":
		return goterm.Color(difficulty, goterm.RED)
	default:
		return difficulty
	}
}
