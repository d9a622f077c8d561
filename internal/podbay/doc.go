// Package podbay holds the ship computer's reaction handlers and the payloads
// they push to the console.
//
// Allowed here:
//   - payload types and their formatting
//   - reaction handlers and the builders that assemble them
//
// Not allowed here:
//   - rendering (see screens)
//   - constructing screens; navigation goes through a bound Navigator
package podbay
