package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-engine/internal/analyses"
	"resume-engine/internal/matching"
	"resume-engine/internal/shared/config"
	"resume-engine/internal/shared/telemetry"
)

const app = "resumectl"

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   app,
	Short: "Deterministic résumé scoring and job matching",
	Long: `resumectl scores résumé text with fixed rules and matches it against
structured job requirements. The same input always yields the same score.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { telemetry.Sync() },
}

//nolint:gochecknoglobals // resolved once in setup
var cfg config.Config

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json-logs", "j", false, "json format for logging")

	_ = viper.BindPFlag("LOG_DEBUG", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("LOG_JSON", rootCmd.PersistentFlags().Lookup("json-logs"))
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.Load()
	// The JSON default suits the server; the CLI logs to a console unless
	// asked otherwise.
	jsonLogs := cfg.LogJSON
	if _, set := os.LookupEnv("LOG_JSON"); !set && !cmd.Flags().Changed("json-logs") {
		jsonLogs = false
	}
	telemetry.Configure(os.Stderr, jsonLogs, cfg.LogDebug)
	return nil
}

func analysisService() *analyses.Service {
	return analyses.NewService(analyses.Limits{MinChars: cfg.MinTextChars, MaxBytes: cfg.MaxTextBytes})
}

func matchService() *matching.Service {
	return matching.NewService(cfg.MaxTextBytes)
}
