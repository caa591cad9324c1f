package main

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes by title, content, or tag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		notes, err := c.Search(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		printNotes(notes)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
