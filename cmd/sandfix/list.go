package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/sandfix/pkg/sandbox"
)

var (
	listRecursive bool
	listIgnore    []string

	listCmd = &cobra.Command{
		Use:   "list <dir>",
		Short: "List the entries beneath a directory",
		Long: `List the entries beneath a directory, sorted lexicographically and
filtered through the given ignore patterns. Recursive listings mark
directories with a trailing slash.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sb, err := sandbox.NewWithOptions(sandbox.Options{
				Path:   args[0],
				Ignore: listIgnore,
			})
			if err != nil {
				return err
			}

			entries, err := sb.List("", listRecursive)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				pterm.Info.Println("No files or directories found.")
				return nil
			}
			for _, entry := range entries {
				pterm.Println(entry)
			}
			return nil
		},
	}
)

func init() {
	listCmd.Flags().BoolVarP(&listRecursive, "recursive", "r", false, "List the full subtree")
	listCmd.Flags().StringArrayVar(&listIgnore, "ignore", nil, "Regular expression excluding matching entries (repeatable)")
}
