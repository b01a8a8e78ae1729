// Package diagnostic provides positioned errors and structured diagnostics
// for the label generator.
//
// Every failure carries the position of the directive or mapping key it
// concerns, a stable code, and one sentinel kind:
//   - ErrArgumentFormat: malformed generate_labels arguments
//   - ErrFileRead: the mapping file could not be read
//   - ErrMappingParse: the mapping file content is invalid
//   - ErrTargetKind: the directive is not attached to an enum
//   - ErrInvalidIdentifier: a key cannot become a Go identifier
//   - ErrIdentifierCollision: several keys derive the same identifier
package diagnostic
