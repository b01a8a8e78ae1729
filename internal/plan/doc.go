// Package plan resolves labelgen directives into label sets consumed by code
// generation.
//
// Every directive runs through the stages of Stage:
//  1. ParseArgs: read file = "path" from the directive
//  2. LoadFile: read and parse the mapping file
//  3. ValidateAndOrder: check the target is a uint32 enum, sort keys by id
//  4. DeriveIdentifiers: turn keys into constant names and validate them
//
// A directive failing any stage stops there and is reported at the position
// of the directive or of the offending mapping key. Identifier collisions are
// checked across the whole package and reported as one diagnostic per enum.
package plan
