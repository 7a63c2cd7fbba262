// Package menu models the slice of the menu catalog that order placement depends on:
// whether a menu can be ordered, its per-person price, its minimum party size and the
// number of orders it can still accept (stock).
//
// The catalog itself (dishes, descriptions, themes) is owned elsewhere. Only stock is
// mutated here, always in the same unit of work as the order that reserves or
// releases a unit.
package menu
