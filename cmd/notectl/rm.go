package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		if err := c.Delete(cmd.Context(), args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("Deleted note %s\n", args[0])

		notes, err := c.List(cmd.Context())
		if err != nil {
			fail(err)
		}
		printNotes(notes)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
