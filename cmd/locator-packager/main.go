// Command locator-packager prepares the update manifest for distribution.
package main

import "github.com/oshokin/locator-seal/cmd/locator-packager/cmd"

func main() {
	cmd.Execute()
}
