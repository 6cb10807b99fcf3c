// Package client defines the shared Cobra command logic for locator-seal.
//
// The command connects to the locator server and pushes the one-time base
// locator assignment, retrying transient failures and stopping immediately
// when the server reports the seal was already consumed.
package client
