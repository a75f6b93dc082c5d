// Package kernel provides core domain primitives used throughout the scheduling
// domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison capabilities
//   - TimeWindow: a value object representing a half-open [start, end) time interval
//
// These primitives enforce domain invariants at construction, are immutable and
// thread-safe, and are shared by every aggregate in the model.
package kernel
