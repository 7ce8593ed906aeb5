package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"SignalTracker/internal/app"
	"SignalTracker/internal/config"
	"SignalTracker/internal/logging"
)

var (
	configPath string

	replayDate string
	replayTop  int

	generateRecords int
	generateOut     string
	generateSeed    int64
)

var rootCmd = &cobra.Command{
	Use:   "signaltracker",
	Short: "AI startup signal tracker",
	Long:  `Collects startup news, scores it for AI relevance and ranks the companies behind the strongest signals.`,
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Fetch current signals and print the leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApplication().RunLive(cmd.Context())
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-score the historical corpus as of a past date",
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf := time.Now().UTC()
		if replayDate != "" {
			parsed, err := time.Parse("2006-01-02", replayDate)
			if err != nil {
				return fmt.Errorf("parse --date: %w", err)
			}
			asOf = parsed
		}
		return newApplication().RunReplay(cmd.Context(), asOf, replayTop)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <company>",
	Short: "Reveal the recorded outcome for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApplication().RunSimulate(cmd.Context(), args[0])
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic historical corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApplication().RunGenerate(cmd.Context(), generateRecords, generateOut, generateSeed)
	},
}

func newApplication() *app.Application {
	cfg := config.Load(configPath)
	return app.New(cfg, logging.New(cfg.Logging.Level))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML configuration file")

	replayCmd.Flags().StringVar(&replayDate, "date", "", "Cutoff date (YYYY-MM-DD), defaults to today")
	replayCmd.Flags().IntVar(&replayTop, "top", 0, "Number of ranked signals to show")

	generateCmd.Flags().IntVar(&generateRecords, "records", 200, "Number of records to generate")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output path, defaults to the configured corpus path")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Random seed")

	rootCmd.AddCommand(liveCmd, replayCmd, simulateCmd, generateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
