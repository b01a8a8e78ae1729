// Package directive finds and parses labelgen directive comments.
//
// A directive documents the enum type it generates labels for:
//
//	//labelgen:generate_labels(file = "animals.toml")
//	type Animal uint32
//
// The argument list must hold exactly one `file = "path"` pair.
package directive
