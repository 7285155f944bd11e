// Package app provides the application service layer.
//
// Orchestrates the ingress use cases: webhook and manual speak-request
// resolution, stop broadcasts, and line-bank introspection. Sits between
// HTTP handlers and the domain components. Depends on domain interfaces,
// not concrete implementations.
package app
