// Package registry tracks the external resources referenced by one compiled
// document.
//
// A Registry assigns every distinct resource path a dense integer handle,
// starting at 1, in first-registration order. The handles become the
// `ExtResource("n")` ids of the emitted document, so registration order is
// what makes the output reproducible. A Registry lives for exactly one
// recipe's compilation and is never shared.
package registry
