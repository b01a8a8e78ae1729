package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pos = token.Position{Filename: "animal.go", Line: 3, Column: 1}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: extra", ErrArgumentFormat), CodeArgumentFormat},
		{Errorf(pos, "%w: x.toml", ErrFileRead), CodeFileRead},
		{ErrTargetKind, CodeTargetKind},
		{errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestAt(t *testing.T) {
	assert.NoError(t, At(pos, nil))

	err := At(pos, ErrTargetKind)
	assert.Equal(t, "animal.go:3:1: this macro can only be used on enums", err.Error())
	assert.ErrorIs(t, err, ErrTargetKind)

	// An existing position is kept.
	other := token.Position{Filename: "plant.go", Line: 9, Column: 2}
	assert.Same(t, err, At(other, err))
}

func TestDiagnostics_AddError(t *testing.T) {
	var d Diagnostics

	d.AddError("Animal", Errorf(pos, "key %q: %w", "big-dog", ErrInvalidIdentifier))
	d.AddError("Animal", nil)

	require.Len(t, d.Errors, 1)

	diag := d.Errors[0]
	assert.Equal(t, DiagnosticError, diag.Severity)
	assert.Equal(t, CodeInvalidIdentifier, diag.Code)
	assert.Equal(t, pos, diag.Pos)
	assert.Equal(t, `key "big-dog": invalid identifier`, diag.Message)
	assert.Equal(t, `animal.go:3:1: [invalid_identifier] key "big-dog": invalid identifier`, diag.String())

	assert.False(t, d.IsValid())
	assert.ErrorIs(t, d.Error(), ErrInvalidIdentifier)
}

func TestDiagnostics_SortAndAll(t *testing.T) {
	var d Diagnostics

	d.AddWarning(token.Position{Filename: "b.go", Line: 1, Column: 1}, "w", "second", "")
	d.AddWarning(token.Position{Filename: "a.go", Line: 7, Column: 1}, "w", "first", "")
	d.AddError("", Errorf(token.Position{Filename: "c.go", Line: 1, Column: 1}, "%w", ErrFileRead))
	d.Sort()

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, "first", all[1].Message)
	assert.Equal(t, "second", all[2].Message)

	assert.True(t, d.HasErrors())
	assert.Equal(t, "warning", all[1].Severity.String())
}

func TestDiagnostics_InfoIsNotAnError(t *testing.T) {
	var d Diagnostics

	d.AddInfo(pos, "i", "note", "Animal")

	assert.Len(t, d.Infos, 1)
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.Equal(t, "info", d.All()[0].Severity.String())
}
