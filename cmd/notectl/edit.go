package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/notekeep-backend/pkg/noteclient"
)

var (
	editTitle   string
	editContent string
	editTags    []string
	editClear   bool
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note's title, content, or tags",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var params noteclient.EditParams
		if cmd.Flags().Changed("title") {
			params.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			params.Content = &editContent
		}
		switch {
		case editClear:
			params.Tags = []string{}
		case cmd.Flags().Changed("tag"):
			params.Tags = editTags
		}

		c := newClient()
		updated, err := c.Edit(cmd.Context(), args[0], params)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Updated note %s\n", updated.ID)

		notes, err := c.List(cmd.Context())
		if err != nil {
			fail(err)
		}
		printNotes(notes)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editContent, "content", "", "new content")
	editCmd.Flags().StringSliceVar(&editTags, "tag", nil, "replacement tag (repeatable)")
	editCmd.Flags().BoolVar(&editClear, "clear-tags", false, "remove all tags")
}
