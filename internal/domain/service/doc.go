// Package service provides the tool registry behind /services.
//
// Providers (math, tabular data) register once at startup. Tool IDs are
// namespaced as "<service>.<tool>" and Execute routes on the prefix.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(math.NewProvider(operations.Limits{}))
//	result, err := registry.Execute(ctx, "math.square", params)
package service
