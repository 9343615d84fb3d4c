// Package ot implements the algebraic core of a plain-text Operational
// Transformation (OT) engine for collaborative editing.
//
// Operations are ordered sequences of three component kinds — Retain,
// Insert, Delete — over a document counted in Unicode code points. Three
// pure functions drive convergence between concurrent editors:
//
//   - Apply: execute an operation against a document
//   - Compose: fold two sequential operations into one equivalent operation
//   - Transform: rewrite two concurrent operations so either application
//     order reaches the same document (the TP1 property)
//
// Every exported constructor and combinator returns a canonical operation:
// no no-op components, no two adjacent components of the same kind. There
// is no shared mutable state anywhere in this package; all values are
// immutable once constructed and every function is safe to call from
// arbitrarily many goroutines against distinct arguments.
package ot
