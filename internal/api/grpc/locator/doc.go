// Package locator implements the gRPC transport for the locator-seal service.
//
// It adapts domain types to protobuf messages and exposes a server that calls
// into a provided business-service interface. The permanent fire-once
// rejection surfaces to clients as FailedPrecondition.
package locator
