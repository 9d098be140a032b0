// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates in other packages rely on:
// identifiers and common validation behavior. Types in this package are
// immutable value objects; their zero values are invalid and must be created
// through the provided constructor functions.
package kernel
