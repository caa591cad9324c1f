package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the server session and drop the cached token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		// Best effort: the cached session is dropped even when the server
		// call fails, so a dead token never sticks around.
		err := c.Logout(cmd.Context())
		if clearErr := clearSession(); clearErr != nil {
			fail(clearErr)
		}
		if err != nil {
			fail(err)
		}

		fmt.Println("Logged out")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
