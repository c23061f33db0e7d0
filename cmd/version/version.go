package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidkik/leetsync/pkg/version"
)

// New creates a new `version` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of leetsync.",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("leetsync version: %s\n", version.Version)
		},
	}
}
