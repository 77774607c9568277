// Package types holds the service and tool descriptors shared by the
// providers, the registry and the HTTP layer.
package types
