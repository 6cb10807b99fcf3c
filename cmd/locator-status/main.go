// Command locator-status prints the current base locator seal state.
package main

import "github.com/oshokin/locator-seal/cmd/locator-status/cmd"

func main() {
	cmd.Execute()
}
