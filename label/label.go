// Package label is the consumer side of labelgen: a generic constraint for
// enums with generated labels, plus helpers over it.
//
// Every enum labelgen generates satisfies WithLabel:
//
//	func Describe[T label.WithLabel[T]](v T) string {
//		return fmt.Sprintf("%s (%d of %d)", v.LabelStr(), v.LabelID(), label.Count[T]())
//	}
package label

import (
	"strconv"

	"labelgen/internal/common"
)

// WithLabel converts between an enum, its label string and its numeric id.
type WithLabel[T any] interface {
	comparable

	// LabelNum returns the number of labels in the mapping.
	LabelNum() uint32
	// FromLabelID returns the enum value for id. Ids missing from the
	// mapping give an unknown value carrying the id.
	FromLabelID(id uint32) T
	// LabelStr returns the mapping key, or "unknown" followed by the id.
	LabelStr() string
	// LabelID returns the numeric id.
	LabelID() uint32
}

// FromID returns the T with label id id.
func FromID[T WithLabel[T]](id uint32) T {
	var zero T
	return zero.FromLabelID(id)
}

// Count returns the number of labels of T.
func Count[T WithLabel[T]]() uint32 {
	var zero T
	return zero.LabelNum()
}

// IsKnown reports whether v is a label of the mapping.
func IsKnown[T WithLabel[T]](v T) bool {
	if u, ok := any(v).(interface{ IsUnknown() bool }); ok {
		return !u.IsUnknown()
	}

	return v.LabelStr() != UnknownStr(v.LabelID())
}

// UnknownStr returns the label string of an unknown value with the given id.
func UnknownStr(id uint32) string {
	return common.UnknownStr + strconv.FormatUint(uint64(id), 10)
}

// Parse returns the value among candidates whose label is s.
func Parse[T WithLabel[T]](s string, candidates ...T) (T, bool) {
	for _, c := range candidates {
		if c.LabelStr() == s {
			return c, true
		}
	}

	var zero T

	return zero, false
}
