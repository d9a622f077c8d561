// Package assembly builds object graphs for screens and components.
//
// A Builder constructs exactly one concrete type. Everything that type depends
// on is obtained from sub-builders handed to the Builder when it is created, so
// a builder never needs to know how anything two or more hops away is made.
// Resolution is recursive: sub-builders run first, in declaration order, and
// the constructor runs last. The resulting construction order is a valid
// topological order of the dependency graph.
//
// Builders are not caches. Every Build call produces a fresh graph; sharing an
// instance between two consumers is done explicitly by building it once and
// passing Shared(instance) to both downstream builders.
//
// Allowed here:
//   - builder combinators, build errors, build observation
//
// Not allowed here:
//   - knowledge of any concrete screen, handler or service
//   - retries or caching of build results
package assembly
