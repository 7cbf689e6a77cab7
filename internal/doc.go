// Package internal documents the tmto backend internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, response writing, and routing
// - domain: catalog records and user accounts
// - storage: JSON file mirrors and the MongoDB credential store
// - auth, config, metrics: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
