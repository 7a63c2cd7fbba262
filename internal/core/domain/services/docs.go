// Package services holds domain logic that spans the menu and order aggregates.
//
// The package includes:
//   - PricingEngine: computes delivery fee, menu price snapshot, volume discount and total
//   - OrderPlacement: checks, in a fixed order, that a menu can take a new or revised order
package services
