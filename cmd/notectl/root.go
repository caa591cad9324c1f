package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/notekeep-backend/pkg/noteclient"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "notectl",
	Short: "Command-line client for the notekeep API",
	Long: `notectl manages personal notes on a notekeep server.

Log in once with 'notectl login'; the access token is cached under the
user config directory and reused until the server rejects it.`,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	def := os.Getenv("NOTEKEEP_SERVER")
	if def == "" {
		def = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", def, "base URL of the notekeep server")
}

// newClient builds a client carrying the cached access token, if any.
func newClient() *noteclient.Client {
	c := noteclient.New(serverURL)
	if sess, err := loadSession(); err == nil {
		c.SetToken(sess.AccessToken)
	}
	return c
}

// fail prints the error and exits. A 401 also drops the cached session
// so the next invocation starts clean.
func fail(err error) {
	if errors.Is(err, noteclient.ErrUnauthorized) {
		_ = clearSession()
		fmt.Fprintln(os.Stderr, "session expired, run 'notectl login' again")
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// printNotes renders a note listing, pinned notes marked with an asterisk.
func printNotes(notes []noteclient.Note) {
	if len(notes) == 0 {
		fmt.Println("no notes")
		return
	}
	for _, n := range notes {
		marker := " "
		if n.IsPinned {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s  %s", marker, n.ID, n.Title)
		if len(n.Tags) > 0 {
			line += fmt.Sprintf("  [%s]", joinTags(n.Tags))
		}
		fmt.Println(line)
	}
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}
