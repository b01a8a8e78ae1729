// Package naming derives Go identifiers from mapping keys and detects
// identifiers claimed more than once.
package naming
