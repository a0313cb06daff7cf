package cfg

import (
	"errors"
	"fmt"

	"ripper/internal/gateway"
	"ripper/internal/paths"
	"ripper/internal/utils/logging"

	"github.com/spf13/cobra"
)

// dirCmd manages the persisted output directory preference.
func dirCmd(g *gateway.Gateway) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Manage the saved output directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			return errors.New("please specify a subcommand. Use --help to see available subcommands")
		},
	}

	cmd.AddCommand(setDirCmd(g), clearDirCmd(g), showDirCmd(g))
	return cmd
}

func setDirCmd(g *gateway.Gateway) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path>",
		Short: "Save an output directory preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if resp := g.SelectDirectory(args[0]); !resp.Success() {
				return errors.New(resp.Err)
			}
			logging.S("Saved output directory: %s", args[0])
			return nil
		},
	}
}

func clearDirCmd(g *gateway.Gateway) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the saved output directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if resp := g.SelectDirectory(""); !resp.Success() {
				return errors.New(resp.Err)
			}
			logging.S("Cleared output directory; downloads go to %s", paths.DefaultDownloadDir())
			return nil
		},
	}
}

func showDirCmd(g *gateway.Gateway) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective output directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			dir, err := g.Store.DownloadDir()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = paths.DefaultDownloadDir()
			}
			fmt.Println(dir)
			return nil
		},
	}
}
