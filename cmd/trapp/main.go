package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev0l/trapp/internal/logger"
)

var (
	// Global flags
	configPath string
	verbose    bool
	engineName string

	app *application
)

var rootCmd = &cobra.Command{
	Use:   "trapp",
	Short: "trapp - turn lecture transcripts into study programs",
	Long: `trapp stores lecture transcripts and generates a study program for each:
key points, study tasks and quiz questions, built on-device from the transcript
text alone.

Drop .txt, .md or .srt files into the inbox and run "trapp watch", or manage
transcripts directly with add, list, show, generate and item.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication(configPath, engineName, verbose)
		if err != nil {
			return err
		}
		app = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			logger.Sync(app.log)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&engineName, "engine", "", "Language engine: rules or model (overrides config)")

	itemCmd.AddCommand(itemEditCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	itemCmd.AddCommand(itemMoveCmd)
	itemCmd.AddCommand(itemAppendCmd)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
