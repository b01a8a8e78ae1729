package main

import (
	"bytes"
	"context"
	"errors"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelgen/internal/diagnostic"
)

const animalSource = `package zoo

//labelgen:generate_labels(file = "animals.toml")
type Animal uint32
`

func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	files["go.mod"] = "module example.com/zoo\n\ngo 1.22\n"

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

type result struct {
	err    error
	out    string
	stderr string
}

func runIn(t *testing.T, opts options) result {
	t.Helper()

	var out, stderr bytes.Buffer

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := execute(context.Background(), opts, &out, newPrinter(&stderr, false), logger)

	return result{err: err, out: out.String(), stderr: stderr.String()}
}

func TestExecute_WritesAndChecks(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"animal.go":    animalSource,
		"animals.toml": "cat = 0\ndog = 1\n\"big dog\" = 2\n",
	})

	res := runIn(t, options{Dir: dir})
	require.NoError(t, res.err, res.stderr)

	content, err := os.ReadFile(filepath.Join(dir, "animal_labels.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "\tcase BigDog:\n\t\treturn \"big dog\"\n")

	// A second load sees the generated file and still succeeds.
	res = runIn(t, options{Dir: dir, Check: true})
	require.NoError(t, res.err, res.stderr+res.out)
	assert.Empty(t, res.out)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "animals.toml"), []byte("cat = 0\ndog = 1\n"), 0o600))

	res = runIn(t, options{Dir: dir, Check: true})
	require.ErrorIs(t, res.err, errFailed)
	assert.Contains(t, res.stderr, "animal_labels.go: out of date")
	assert.Contains(t, res.out, "-\tBigDog")
}

func TestExecute_CheckMissing(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"animal.go":    animalSource,
		"animals.toml": "cat = 0\n",
	})

	res := runIn(t, options{Dir: dir, Check: true})
	require.ErrorIs(t, res.err, errFailed)
	assert.Contains(t, res.stderr, "animal_labels.go: missing")
	assert.Contains(t, res.out, "+const AnimalLabelNum = 1")

	assert.NoFileExists(t, filepath.Join(dir, "animal_labels.go"))
}

func TestExecute_Prefix(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"animal.go":    animalSource,
		"animals.toml": "cat = 0\n",
	})

	res := runIn(t, options{Dir: dir, Prefix: true})
	require.NoError(t, res.err, res.stderr)

	content, err := os.ReadFile(filepath.Join(dir, "animal_labels.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "AnimalCat Animal = 0")
}

func TestExecute_FailureWritesNothing(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"animal.go": animalSource + `
//labelgen:generate_labels(file = "plants.toml")
type Plant uint32
`,
		"animals.toml": "cat = 0\n",
	})

	res := runIn(t, options{Dir: dir})
	require.ErrorIs(t, res.err, errFailed)
	assert.Contains(t, res.stderr, "animal.go:6:1: error: ")
	assert.Contains(t, res.stderr, "plants.toml")

	assert.NoFileExists(t, filepath.Join(dir, "animal_labels.go"))
	assert.NoFileExists(t, filepath.Join(dir, "plant_labels.go"))
}

func TestExecute_DuplicateWarning(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"animal.go":    animalSource,
		"animals.toml": "cat = 1\nkitty = 1\n",
	})

	res := runIn(t, options{Dir: dir})
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stderr, "warning: [duplicate_id] id 1 is shared by keys")
}

func TestExecute_TypesFilter(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"animal.go":    animalSource,
		"animals.toml": "cat = 0\n",
	})

	res := runIn(t, options{Dir: dir, Types: []string{"Animals"}})
	require.ErrorIs(t, res.err, errFailed)
	assert.Contains(t, res.stderr, "did you mean Animal?")
}

func TestExecute_MissingDir(t *testing.T) {
	res := runIn(t, options{Dir: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, res.err)
	assert.False(t, errors.Is(res.err, errFailed))
}

func TestSplitTypes(t *testing.T) {
	assert.Nil(t, splitTypes(""))
	assert.Equal(t, []string{"Animal", "Plant"}, splitTypes("Animal, Plant,"))
}

func TestPrinter_Diagnostic(t *testing.T) {
	var diags diagnostic.Diagnostics

	diags.AddWarning(token.Position{Filename: "animal.go", Line: 3, Column: 1}, "duplicate_id", "id 1 is shared", "Animal")

	var buf bytes.Buffer
	newPrinter(&buf, false).Diagnostics(diags)

	assert.Equal(t, "animal.go:3:1: warning: [duplicate_id] id 1 is shared\n", buf.String())
}

func TestPrinter_Diff(t *testing.T) {
	var buf bytes.Buffer
	newPrinter(&buf, false).Diff("--- a\n+++ a (generated)\n@@\n-old\n+new\n same\n")

	assert.Equal(t, "--- a\n+++ a (generated)\n@@\n-old\n+new\n same\n", buf.String())
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, useColor(&Config{}, &buf))
	assert.True(t, useColor(&Config{Color: true}, &buf))
	assert.False(t, useColor(&Config{Color: true, NoColor: true}, &buf))
}

func TestExecute_BuildTags(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"doc.go":       "// Package zoo holds tagged labels.\npackage zoo\n",
		"animal.go":    "//go:build labels\n\n" + animalSource,
		"animals.toml": "cat = 0\n",
	})

	res := runIn(t, options{Dir: dir})
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stderr, "info: [no_directives] no generate_labels directives in ")
	assert.NoFileExists(t, filepath.Join(dir, "animal_labels.go"))

	res = runIn(t, options{Dir: dir, Tags: "labels"})
	require.NoError(t, res.err, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "animal_labels.go"))
}

func TestExecute_NotAnEnum(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"animal.go": `package zoo

//labelgen:generate_labels(file = "animals.toml")
type Animal struct{}
`,
		"animals.toml": "cat = 0\n",
	})

	res := runIn(t, options{Dir: dir})
	require.ErrorIs(t, res.err, errFailed)
	assert.Contains(t, res.stderr, "animal.go:3:1: error: [target_kind] this macro can only be used on enums: Animal is a struct")
}

func TestExecute_DottedKeyRejected(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"animal.go":    animalSource,
		"animals.toml": "cat = 0\nbig.dog = 1\n",
	})

	res := runIn(t, options{Dir: dir})
	require.ErrorIs(t, res.err, errFailed)
	assert.Contains(t, res.stderr, "[mapping_parse]")
	assert.Contains(t, res.stderr, "nested tables are not supported")
	assert.NoFileExists(t, filepath.Join(dir, "animal_labels.go"))
}
