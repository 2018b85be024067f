package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytsearch",
	Short: "Search YouTube from the command line",
	Long: `ytsearch queries YouTube's internal search API and prints typed
video and channel results, following continuation pages on request.

Examples:
  ytsearch search "golang tutorial"
  ytsearch search "lofi" --filter video --pages 3
  ytsearch search "news" --json --suggest`,
}

// Execute runs the root command. It is called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// zerologAdapter bridges the library's Logger interface onto zerolog.
type zerologAdapter struct {
	log zerolog.Logger
}

func (a zerologAdapter) Warnf(format string, args ...any) {
	a.log.Warn().Msgf(format, args...)
}
