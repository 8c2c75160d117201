package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     "credtech",
		Short:   "Explainable credit intelligence scoring for equity tickers",
		Version: version,
		Long: `credtech blends price momentum, news sentiment, and a macro indicator
into a decomposed 0-100 credit score per ticker, served over a JSON API.`,
	}
	rootCmd.PersistentFlags().String("config", "configs/config.yaml", "Path to YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scoring API server",
		Long:  "Serve the credit scoring API, with an optional scheduled watchlist refresh.",
		RunE:  runServe,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [tickers...]",
		Short: "Score tickers once and print the results as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAnalyze,
	}

	rootCmd.AddCommand(serveCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	return path
}
