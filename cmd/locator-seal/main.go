// Command locator-seal performs the one-time base locator assignment.
package main

import "github.com/oshokin/locator-seal/cmd/locator-seal/cmd"

func main() {
	cmd.Execute()
}
