// Package screens contains the console's screens and the builders that
// assemble each one together with its handler.
//
// Allowed here:
// - screen implementations that satisfy tui.Screen and display a payload
// - key handling that turns presses into podbay events
//
// Not allowed here:
// - deciding what to show; handlers push payloads
// - presenting other screens directly; handlers navigate through the router
package screens
