package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelgen/internal/diagnostic"
)

// writeModule creates a throwaway module holding files and returns its
// directory.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	files["go.mod"] = "module example.com/zoo\n\ngo 1.22\n"

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func load(t *testing.T, files map[string]string) *Package {
	t.Helper()

	pkg, err := NewLoader().Load(context.Background(), writeModule(t, files))
	require.NoError(t, err)

	return pkg
}

func TestLoader_EnumTarget(t *testing.T) {
	pkg := load(t, map[string]string{
		"animal.go": `package zoo

//labelgen:generate_labels(file = "animals.toml")
type Animal uint32

func Favorite() Animal { return Cat }
`,
	})

	assert.Equal(t, "zoo", pkg.Name)
	assert.Equal(t, "example.com/zoo", pkg.Path)
	require.Len(t, pkg.Targets, 1)

	target := pkg.Targets[0]
	require.NoError(t, target.Err)
	assert.Equal(t, TypeID{PkgPath: "example.com/zoo", Name: "Animal"}, target.ID)
	assert.Equal(t, 3, target.Pos.Line)
	assert.Equal(t, "animal.go", filepath.Base(target.Pos.Filename))

	// Cat is not generated yet.
	assert.NotEmpty(t, pkg.TypeErrors)

	assert.Contains(t, pkg.Declared, "Animal")
	assert.Contains(t, pkg.Declared, "Favorite")
	assert.Same(t, target, pkg.Target("Animal"))
	assert.Nil(t, pkg.Target("Plant"))
}

func TestLoader_RejectsNonEnumTargets(t *testing.T) {
	pkg := load(t, map[string]string{
		"targets.go": `package zoo

//labelgen:generate_labels(file = "a.toml")
type Point struct{ X, Y int }

//labelgen:generate_labels(file = "a.toml")
type Signed int

//labelgen:generate_labels(file = "a.toml")
func Feed() {}

//labelgen:generate_labels(file = "a.toml")
type Alias = uint32

//labelgen:generate_labels(file = "a.toml")
var Count uint32
`,
	})

	require.Len(t, pkg.Targets, 5)

	want := []struct {
		line int
		msg  string
	}{
		{line: 3, msg: "Point is a struct"},
		{line: 6, msg: "Signed is an integer of type int, want uint32"},
		{line: 9, msg: "Feed is a function"},
		{line: 12, msg: "Alias is an alias"},
		{line: 15, msg: "found a var declaration"},
	}

	for i, w := range want {
		target := pkg.Targets[i]
		require.Error(t, target.Err, w.msg)
		assert.ErrorIs(t, target.Err, diagnostic.ErrTargetKind)
		assert.Contains(t, target.Err.Error(), "this macro can only be used on enums")
		assert.Contains(t, target.Err.Error(), w.msg)
		assert.Equal(t, w.line, target.Pos.Line)
	}
}

func TestLoader_SkipsGeneratedFiles(t *testing.T) {
	pkg := load(t, map[string]string{
		"animal.go": `package zoo

//labelgen:generate_labels(file = "animals.toml")
type Animal uint32

func (a Animal) Describe() string { return "animal" }
`,
		"animal_labels.go": `// Code generated by labelgen. DO NOT EDIT.

package zoo

const Cat Animal = 0

func (a Animal) LabelStr() string { return "cat" }
`,
	})

	require.Len(t, pkg.Targets, 1)
	require.NoError(t, pkg.Targets[0].Err)

	assert.NotContains(t, pkg.Declared, "Cat")
	assert.Contains(t, pkg.Declared, "Animal")

	methods := pkg.Methods["Animal"]
	assert.Contains(t, methods, "Describe")
	assert.NotContains(t, methods, "LabelStr")
}

func TestLoader_MissingDir(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrPackageLoad)
}
