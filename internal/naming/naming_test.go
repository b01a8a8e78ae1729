package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelgen/internal/diagnostic"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "cat", want: "Cat"},
		{raw: "dog", want: "Dog"},
		{raw: "big dog", want: "BigDog"},
		{raw: "big  dog", want: "BigDog"},
		{raw: " leading and trailing ", want: "LeadingAndTrailing"},
		{raw: "already Upper", want: "AlreadyUpper"},
		{raw: "keep mIxEd case", want: "KeepMIxEdCase"},
		{raw: "snake_case", want: "Snake_case"},
		{raw: "émile zola", want: "ÉmileZola"},
		{raw: "ßtraße", want: "SStraße"},
		{raw: "9 lives", want: "9Lives"},
		{raw: "", want: ""},
		{raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.raw))
		})
	}
}

func TestConstName(t *testing.T) {
	assert.Equal(t, "BigDog", ConstName("BigDog", "Animal", Options{}))
	assert.Equal(t, "AnimalBigDog", ConstName("BigDog", "Animal", Options{Prefix: true}))
	assert.Equal(t, "bigDog", ConstName("BigDog", "animal", Options{}))
	assert.Equal(t, "animalBigDog", ConstName("BigDog", "animal", Options{Prefix: true}))
	assert.Equal(t, "émile", ConstName("Émile", "animal", Options{}))
	assert.Empty(t, ConstName("", "animal", Options{}))
}

func TestValidate(t *testing.T) {
	valid := []string{"Cat", "BigDog", "Snake_case", "ÉmileZola", "cat", "X9"}
	for _, name := range valid {
		assert.NoError(t, Validate(name), name)
	}

	invalid := map[string]string{
		"":        "empty",
		"_":       "blank",
		"type":    "keyword",
		"9Lives":  "not a valid",
		"Dash-Ed": "not a valid",
		"Dot.Ted": "not a valid",
	}
	for name, msg := range invalid {
		err := Validate(name)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, diagnostic.ErrInvalidIdentifier)
		assert.Contains(t, err.Error(), msg)
	}
}

func TestCollisions(t *testing.T) {
	claims := []Named{
		{Name: "BigDog", Source: `key "big dog"`},
		{Name: "Cat", Source: `key "cat"`},
		{Name: "BigDog", Source: `key "Big dog"`},
		{Name: "Ant", Source: `key "ant"`},
		{Name: "Ant", Source: "package constant Ant"},
		{Name: "BigDog", Source: `key "big  dog"`},
	}

	got := Collisions(claims)
	require.Len(t, got, 2)

	assert.Equal(t, "Ant", got[0].Name)
	assert.Equal(t, []string{`key "ant"`, "package constant Ant"}, got[0].Sources)
	assert.Equal(t, "BigDog", got[1].Name)
	assert.Len(t, got[1].Sources, 3)

	err := CollisionError(got)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrIdentifierCollision)
	assert.Contains(t, err.Error(), `Ant (key "ant", package constant Ant)`)
	assert.Contains(t, err.Error(), `BigDog (key "big dog", key "Big dog", key "big  dog")`)

	assert.Empty(t, Collisions([]Named{{Name: "Cat"}, {Name: "Dog"}}))
	assert.NoError(t, CollisionError(nil))
}
