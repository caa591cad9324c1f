package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and cache the access token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if loginPassword == "" {
			fmt.Fprint(os.Stderr, "password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				fail(err)
			}
			loginPassword = strings.TrimRight(line, "\r\n")
		}

		c := newClient()
		sess, err := c.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			fail(err)
		}

		if err := saveSession(&session{
			AccessToken:  sess.AccessToken,
			RefreshToken: sess.RefreshToken,
		}); err != nil {
			fail(err)
		}

		fmt.Printf("Logged in as %s\n", sess.User.Email)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted if omitted)")
	loginCmd.MarkFlagRequired("email") //nolint:errcheck
}
