// Package gen provides deterministic Go code generation for label enums.
//
// Generation uses text/template + go/format. For every resolved enum it
// emits <type>_labels.go holding:
//   - one typed constant per mapping key, ascending by id
//   - <Type>LabelNum and <Type>FromLabelID
//   - the LabelNum, FromLabelID, LabelStr and LabelID methods, plus
//     IsUnknown, String and GoString
//
// Values of the enum that are not mapping ids are unknown labels; they keep
// their numeric id and print as "unknown<id>".
package gen
