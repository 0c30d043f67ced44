package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomldoc/tomldoc"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print the value stored under a key",
	Long:  "Look up a top-level key, or a key inside a table using the dotted form table.key.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		v, err := lookup(doc, args[1])
		if err != nil {
			return err
		}
		fmt.Println(v.String())
		return nil
	},
}

func lookup(doc *tomldoc.Document, key string) (*tomldoc.Value, error) {
	table, rest, dotted := strings.Cut(key, ".")
	if !dotted {
		return doc.GetValue(key)
	}
	t, err := doc.GetTable(table)
	if err != nil {
		return nil, err
	}
	return t.GetValue(rest)
}
