// Package kernel provides core domain primitives for the settlement engine.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Identity: A value object for participant identities (platform authority,
//     customers, operators, treasury) supplied by the surrounding wallet runtime
//   - Address: A deterministic derived storage address computed from a tagged
//     seed tuple; any participant can recompute it without a lookup table
//   - GeoPoint: A value object for opaque coordinate strings carried by
//     vehicles and deliveries
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
