// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the settlement engine. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - Authorizer: verifies that the signer presented with an operation
//     matches the authority the operation requires, failing closed
//   - SettlementEngine: computes the fee split and performs the atomic
//     fund movement that drains a delivery escrow on completion
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
