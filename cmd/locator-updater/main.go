// Command locator-updater downloads and applies updates from the server.
package main

import "github.com/oshokin/locator-seal/cmd/locator-updater/cmd"

func main() {
	cmd.Execute()
}
