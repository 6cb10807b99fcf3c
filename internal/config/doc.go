// Package config defines connection settings used by binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the server gRPC address, the seal state file path
// and the update folder URL.
package config
