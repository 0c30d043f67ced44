package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a TOML file and report the first error, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d keys, %d tables)\n", args[0], len(doc.KeyValues()), len(doc.Tables()))
		return nil
	},
}
