// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (framed boxes, aligned tables, popup compositor)
//
// Not allowed here:
// - key handling, screen state, or anything that knows about payloads
package widgets
