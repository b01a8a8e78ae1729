// Package analyze loads the Go package holding labelgen directives.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find every
// //labelgen:generate_labels directive and check the declaration it
// documents. Only a defined type with underlying type uint32 is a valid
// target.
//
// Key types:
//   - Target: a directive and the enum type it documents
//   - Package: the targets plus the package-level names and methods that
//     generated code must not collide with
package analyze
