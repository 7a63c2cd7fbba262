// Package kernel provides value objects shared by every aggregate of the catering domain.
//
// The package includes:
//   - UUID: identifiers for aggregates and entities
//   - Money: non-negative amounts quantized to two fraction digits with round-half-up
//   - Address: the event venue (street line and city)
//   - Actor: the authenticated identity and role an operation runs for
//
// Values are immutable. Zero values of UUID, Address and Actor fail Validate,
// so they must be built through their constructors.
package kernel
