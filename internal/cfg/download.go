package cfg

import (
	"errors"
	"fmt"
	"strings"

	"ripper/internal/batch"
	"ripper/internal/domain/keys"
	"ripper/internal/gateway"
	"ripper/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// audioCmd downloads audio from one URL or a CSV file of URLs.
func audioCmd(g *gateway.Gateway) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "audio [url]",
		Short: "Download audio",
		Long:  "Download audio from a URL, or in bulk with --file pointing at a CSV of URLs (one per row).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			req, err := buildRequest(args, file)
			if err != nil {
				return err
			}
			applyBatchSettings(g)
			return report(g.Audio(c.Context(), req))
		},
	}

	cmd.Flags().StringVar(&file, keys.BatchFile, "", "CSV file containing one URL per row")
	return cmd
}

// videoCmd downloads video from one URL or a CSV file of URLs.
func videoCmd(g *gateway.Gateway) *cobra.Command {
	var (
		file string
		best bool
	)

	cmd := &cobra.Command{
		Use:   "video [url]",
		Short: "Download video",
		Long:  "Download video from a URL, or in bulk with --file pointing at a CSV of URLs (one per row).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			req, err := buildRequest(args, file)
			if err != nil {
				return err
			}
			req.BestQuality = best
			applyBatchSettings(g)
			return report(g.Video(c.Context(), req))
		},
	}

	cmd.Flags().StringVar(&file, keys.BatchFile, "", "CSV file containing one URL per row")
	cmd.Flags().BoolVar(&best, keys.BestQuality, false, "Download the best available quality with no resolution cap")
	return cmd
}

// applyBatchSettings pushes flag-driven batch options onto the gateway's
// processor before a download command runs.
func applyBatchSettings(g *gateway.Gateway) {
	if p, ok := g.Batch.(*batch.Processor); ok {
		p.Limit = viper.GetInt(keys.Concurrency)
	}
}

// buildRequest assembles a gateway request from positional and flag
// input. The gateway enforces the one-of-URL-or-file rule; this only
// shapes the arguments.
func buildRequest(args []string, file string) (gateway.Request, error) {
	req := gateway.Request{
		File:      file,
		Directory: viper.GetString(keys.OutputDir),
	}
	if len(args) == 1 {
		req.URL = args[0]
	}
	if req.URL == "" && req.File == "" {
		return req, errors.New("provide a URL argument or --file")
	}
	return req, nil
}

// report prints a response and converts failures into command errors.
func report(resp gateway.Response) error {
	switch {
	case len(resp.URLsRejected) > 0:
		logging.E("The following URLs were rejected:\n%s", strings.Join(resp.URLsRejected, "\n"))
		return fmt.Errorf("%d URL(s) failed", len(resp.URLsRejected))
	case resp.Err != "":
		return errors.New(resp.Err)
	default:
		logging.S("%s", resp.Message)
		return nil
	}
}
