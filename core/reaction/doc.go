// Package reaction holds the contract for reaction handlers and the binding
// slot they use for their non-owning back-references.
//
// A handler owns its private state and the collaborators it was constructed
// with. It does not own the display it pushes payloads to, nor the router it
// asks for navigation; those are bound after construction through a Slot and
// can be rebound at any time.
//
// Using a slot that was never bound is a programming error and panics with a
// *PreconditionError. Using a slot whose target released itself (for example a
// screen that was torn down) is a no-op.
package reaction
