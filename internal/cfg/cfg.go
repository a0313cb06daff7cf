// Package cfg provides configuration and command-line interface setup.
package cfg

import (
	"context"
	"path/filepath"

	"ripper/internal/domain/keys"
	"ripper/internal/domain/setup"
	"ripper/internal/gateway"
	"ripper/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ripper",
	Short: "Ripper downloads audio and video from the web.",
	Long:  "Ripper orchestrates external fetch and transcode tools to save audio or video locally, one URL at a time or in bulk from a CSV file.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := logging.Setup(viper.GetInt(keys.DebugLevel), setup.LogFilePath); err != nil {
			logging.E("Could not set up file logging, proceeding without: %v", err)
		}
	},
}

// InitCommands builds the command tree around an initialized gateway.
func InitCommands(g *gateway.Gateway, version string) error {
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debug level (0 = info, 1+ = debug)")
	rootCmd.PersistentFlags().StringP(keys.OutputDir, "d", "", "Output directory for this run (overrides the saved preference)")
	rootCmd.PersistentFlags().Int(keys.Concurrency, 0, "Max concurrent downloads in a bulk run (0 = unbounded)")

	for _, key := range []string{keys.DebugLevel, keys.OutputDir, keys.Concurrency} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			return err
		}
	}

	loadConfigFile()

	rootCmd.AddCommand(
		audioCmd(g),
		videoCmd(g),
		dirCmd(g),
		updateCmd(g),
		versionCmd(version),
	)
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfigFile reads the optional config file in the program config
// directory. Absence is not an error.
func loadConfigFile() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(setup.CfgDir)
	if err := viper.ReadInConfig(); err == nil {
		logging.D("Loaded config file: %s", filepath.Join(setup.CfgDir, "config.yaml"))
	}
}
