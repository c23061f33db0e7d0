package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sidkik/leetsync/cmd/backfill"
	"github.com/sidkik/leetsync/cmd/problems"
	syncCmd "github.com/sidkik/leetsync/cmd/sync"
	"github.com/sidkik/leetsync/cmd/util"
	"github.com/sidkik/leetsync/cmd/version"
	"github.com/sidkik/leetsync/pkg/report"
)

// verboseLogKey is the environment variable used to enable verbose logging.
// When it's set to `true`, Debug events are logged, rather than just Info and
// above.
const verboseLogKey = "LEETSYNC_LOG_VERBOSE"

// Execute runs the main CLI process.
func Execute() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}
	log.AddHook(report.NewLogHook())

	rootCmd := &cobra.Command{
		Use:          "leetsync",
		Short:        "Mirror your accepted LeetCode submissions into a local directory",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence errors
		// here to avoid double printing.
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			report.SetSource(cmd.CalledAs())
		},
	}
	rootCmd.AddCommand(
		backfill.New(),
		problems.New(),
		syncCmd.New(),
		version.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		util.HandleFatalError(err)
	}
}
