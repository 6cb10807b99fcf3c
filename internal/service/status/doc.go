// Package status implements the locator-status command.
//
// It queries the locator server for the current seal state and prints it,
// either once or continuously in watch mode.
package status
