package naming

import (
	"fmt"
	"go/token"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"labelgen/internal/common"
	"labelgen/internal/diagnostic"
)

// Derive turns a raw mapping key into a type-member name: the key is split on
// spaces, the first character of every word is upper-cased and the words are
// concatenated. Empty words (consecutive spaces) contribute nothing.
//
// Examples:
//   - "cat" -> "Cat"
//   - "big dog" -> "BigDog"
//   - "big  DOG" -> "BigDOG"
func Derive(raw string) string {
	// Casers are stateful; one per call keeps Derive safe for concurrent use.
	upper := cases.Upper(language.Und)

	var b strings.Builder

	b.Grow(len(raw))

	for _, word := range strings.Split(raw, " ") {
		if word == "" {
			continue
		}

		r, size := utf8.DecodeRuneInString(word)
		b.WriteString(upper.String(string(r)))
		b.WriteString(word[size:])
	}

	return b.String()
}

// Options control how derived names become Go constant names.
type Options struct {
	// Prefix prepends the enum type name, e.g. AnimalCat.
	Prefix bool
}

// ConstName returns the constant name for a derived identifier. Constants of
// an unexported type are unexported too.
func ConstName(ident, typeName string, opts Options) string {
	name := ident
	if opts.Prefix {
		name = typeName + ident
	}

	if token.IsExported(typeName) || name == "" {
		return name
	}

	r, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToLower(r)) + name[size:]
}

// Validate reports whether name can be declared as a Go identifier.
func Validate(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", diagnostic.ErrInvalidIdentifier)
	case name == "_":
		return fmt.Errorf("%w: blank identifier", diagnostic.ErrInvalidIdentifier)
	case token.IsKeyword(name):
		return fmt.Errorf("%w: %q is a Go keyword", diagnostic.ErrInvalidIdentifier, name)
	case !token.IsIdentifier(name):
		return fmt.Errorf("%w: %q is not a valid Go identifier", diagnostic.ErrInvalidIdentifier, name)
	}

	return nil
}

// Named is something that claims an identifier.
type Named struct {
	// Name is the claimed identifier.
	Name string
	// Source describes where the claim comes from, e.g. `key "big dog"`.
	Source string
}

// Collision is a set of claims on the same identifier.
type Collision struct {
	Name    string
	Sources []string
}

// String renders the collision as `Name (a, b)`.
func (c Collision) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, strings.Join(c.Sources, ", "))
}

// Collisions groups claims by name and returns every name claimed more than
// once, sorted by name. Sources keep their input order.
func Collisions(claims []Named) []Collision {
	byName := make(map[string][]string)

	var order []string

	for _, c := range claims {
		if _, ok := byName[c.Name]; !ok {
			order = append(order, c.Name)
		}

		byName[c.Name] = append(byName[c.Name], c.Source)
	}

	var out []Collision

	for _, name := range order {
		if sources := byName[name]; common.IsMultiple(sources) {
			out = append(out, Collision{Name: name, Sources: sources})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}

// CollisionError consolidates every collision group into one error.
func CollisionError(collisions []Collision) error {
	if common.IsEmpty(collisions) {
		return nil
	}

	groups := make([]string, 0, len(collisions))
	for _, c := range collisions {
		groups = append(groups, c.String())
	}

	return fmt.Errorf("%w: %s", diagnostic.ErrIdentifierCollision, strings.Join(groups, "; "))
}
