package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labelgen/examples/animals"
	"labelgen/examples/colors"
	"labelgen/label"
)

// plain implements WithLabel without IsUnknown.
type plain uint32

func (plain) LabelNum() uint32 { return 1 }

func (plain) FromLabelID(id uint32) plain { return plain(id) }

func (p plain) LabelID() uint32 { return uint32(p) }

func (p plain) LabelStr() string {
	if p == 7 {
		return "seven"
	}

	return label.UnknownStr(uint32(p))
}

func TestFromIDAndCount(t *testing.T) {
	assert.Equal(t, animals.Dog, label.FromID[animals.Animal](1))
	assert.Equal(t, animals.Animal(42), label.FromID[animals.Animal](42))
	assert.Equal(t, uint32(animals.AnimalLabelNum), label.Count[animals.Animal]())
	assert.Equal(t, uint32(colors.ColorLabelNum), label.Count[colors.Color]())
}

func TestIsKnown(t *testing.T) {
	assert.True(t, label.IsKnown(animals.BigDog))
	assert.False(t, label.IsKnown(animals.Animal(3)))
	assert.True(t, label.IsKnown(colors.ColorCrimson))

	assert.True(t, label.IsKnown(plain(7)))
	assert.False(t, label.IsKnown(plain(8)))
}

func TestUnknownStr(t *testing.T) {
	assert.Equal(t, "unknown5", label.UnknownStr(5))
	assert.Equal(t, label.UnknownStr(3), animals.Animal(3).LabelStr())
}

func TestParse(t *testing.T) {
	a, ok := label.Parse("big dog", animals.Cat, animals.Dog, animals.BigDog)
	assert.True(t, ok)
	assert.Equal(t, animals.BigDog, a)

	_, ok = label.Parse("fish", animals.Cat, animals.Dog)
	assert.False(t, ok)
}
