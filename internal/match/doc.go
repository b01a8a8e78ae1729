// Package match provides name normalization and Levenshtein distance for
// "did you mean" hints in diagnostics.
package match
