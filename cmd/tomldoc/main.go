package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomldoc/tomldoc"
)

var (
	verbose bool
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "tomldoc",
	Short:         "Inspect, format and convert TOML documents",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(jsonCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tomldoc: %v\n", err)
		os.Exit(1)
	}
}

// loadDocument reads and parses one TOML file.
func loadDocument(path string) (*tomldoc.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).Int("bytes", len(data)).Msg("read input")
	doc, err := tomldoc.Parse(data)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
