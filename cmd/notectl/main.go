// Command notectl is a terminal client for the notekeep API.
//
// The access token from login is cached under the user config directory
// and reused until the server rejects it.
package main

func main() {
	Execute()
}
