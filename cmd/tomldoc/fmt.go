package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomldoc/tomldoc"
)

var fmtOutput string

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a TOML file",
	Long:  "Parse a TOML file and print its canonical serialization. Comments are dropped and scalar formats are normalized.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if fmtOutput != "" {
			f, err := os.Create(fmtOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
			log.Debug().Str("file", fmtOutput).Msg("writing output")
		}
		return tomldoc.NewEncoder(out).Encode(doc)
	},
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "write to file instead of stdout")
}
