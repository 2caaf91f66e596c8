package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxpoletto/newsy/internal/app"
	"github.com/maxpoletto/newsy/internal/config"
	"github.com/maxpoletto/newsy/internal/logging"
)

var (
	inputPath  string
	outputDir  string
	summarizer string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "newsy",
	Short: "newsy - news diary classification and site pipeline",
	Long: `newsy ingests a numbered list of article links, classifies each into
themes and keywords, enriches social-media posts with live content, and
emits a static dataset plus chronological and thematic HTML views.`,
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the full pipeline over a diary file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if inputPath != "" {
			cfg.Input = inputPath
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		if summarizer != "" {
			cfg.Summary.Mode = summarizer
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logger := logging.New(cfg.Logging.Level)

		application, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		return application.Run(cmd.Context())
	},
}

func init() {
	processCmd.Flags().StringVarP(&inputPath, "input", "i", "", "diary input file (one numbered link per line)")
	processCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for dataset and pages")
	processCmd.Flags().StringVar(&summarizer, "summarizer", "", "theme summarizer: local or anthropic")
	processCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.AddCommand(processCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
