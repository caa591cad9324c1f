package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addTags []string

var addCmd = &cobra.Command{
	Use:   "add [title] [content]",
	Short: "Add a note",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		created, err := c.Create(cmd.Context(), args[0], args[1], addTags)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Added note %s\n", created.ID)

		// Re-fetch so the user sees the server's ordering, not a local guess.
		notes, err := c.List(cmd.Context())
		if err != nil {
			fail(err)
		}
		printNotes(notes)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag to attach (repeatable)")
}
