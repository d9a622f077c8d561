// Package app is the composition root. It turns a config.Config into a ready
// console and the stores behind it.
//
// Allowed here:
// - wire providers and injectors
// - the builder graph that ties handlers to screens
//
// Not allowed here:
// - domain behaviour; handlers and services own it
package app
