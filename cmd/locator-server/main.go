// Command locator-server runs the gRPC server that owns the base locator seal.
package main

import "github.com/oshokin/locator-seal/cmd/locator-server/cmd"

func main() {
	cmd.Execute()
}
