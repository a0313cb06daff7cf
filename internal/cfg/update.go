package cfg

import (
	"fmt"

	"ripper/internal/gateway"
	"ripper/internal/utils/logging"

	"github.com/spf13/cobra"
)

// updateCmd checks for and applies a newer release.
func updateCmd(g *gateway.Gateway) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if checkOnly {
				info, err := g.Updater.Check(c.Context())
				if err != nil {
					return err
				}
				if info.UpdateAvailable {
					logging.I("Update available: %s (running %s)", info.LatestVersion, info.CurrentVersion)
				} else {
					logging.I("Already up to date (running %s)", info.CurrentVersion)
				}
				return nil
			}

			return g.Lifecycle(c.Context(), "update", func(status string) {
				logging.I("%s", status)
			})
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only check whether an update is available")
	return cmd
}

// versionCmd prints the running build version.
func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("ripper " + version)
		},
	}
}
