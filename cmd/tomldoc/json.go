package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json <file>",
	Short: "Convert a TOML file to JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		if err := doc.EncodeJSON(os.Stdout); err != nil {
			return err
		}
		fmt.Println()
		return nil
	},
}
