package cli

import (
	"github.com/spf13/cobra"

	"github.com/rickgao/tws-tools/internal/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Success(version.String(), map[string]string{
				"version":    version.Resolved(),
				"commit":     version.Commit,
				"build_time": version.BuildTime,
			})
		},
	}
}
