// Package mapping loads label mapping files.
//
// A mapping file is a flat table of names to unsigned 32-bit ids. TOML is
// the default syntax:
//
//	cat = 0
//	dog = 1
//	"big dog" = 2
//
// Files ending in .yaml or .yml are read as YAML maps instead. Nested
// tables, arrays and non-integer values are rejected.
//
// Entries keep their on-disk order; Ordered sorts them by id with a stable
// sort, so keys sharing an id stay in file order.
package mapping
