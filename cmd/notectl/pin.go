package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin [id]",
	Short: "Pin a note to the top of the list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setPinned(cmd, args[0], true)
	},
}

var unpinCmd = &cobra.Command{
	Use:   "unpin [id]",
	Short: "Unpin a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setPinned(cmd, args[0], false)
	},
}

func setPinned(cmd *cobra.Command, id string, pinned bool) {
	c := newClient()

	if _, err := c.SetPinned(cmd.Context(), id, pinned); err != nil {
		fail(err)
	}
	if pinned {
		fmt.Printf("Pinned note %s\n", id)
	} else {
		fmt.Printf("Unpinned note %s\n", id)
	}

	notes, err := c.List(cmd.Context())
	if err != nil {
		fail(err)
	}
	printNotes(notes)
}

func init() {
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(unpinCmd)
}
