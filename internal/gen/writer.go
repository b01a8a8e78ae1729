package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

// WriteFiles writes every generated file into its package directory.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", file.Dir, err)
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Stale is a generated file whose on-disk copy is missing or out of date.
type Stale struct {
	File    GeneratedFile
	Missing bool
	// Diff is a line diff from the on-disk copy to the generated content.
	Diff string
}

// Check compares every generated file with its on-disk copy without writing
// anything.
func Check(files []GeneratedFile) ([]Stale, error) {
	var stale []Stale

	for _, file := range files {
		current, err := os.ReadFile(file.Path())
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, Stale{
				File:    file,
				Missing: true,
				Diff:    LineDiff(file.Path(), "", string(file.Content)),
			})

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file.Path(), err)
		}

		if string(current) == string(file.Content) {
			continue
		}

		stale = append(stale, Stale{
			File: file,
			Diff: LineDiff(file.Path(), string(current), string(file.Content)),
		})
	}

	return stale, nil
}

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// LineDiff renders a line-oriented diff from current to want. Runs of
// unchanged lines are cut down to diffContext lines around each change.
func LineDiff(name, current, want string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(current, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var all []diffLine

	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			all = append(all, diffLine{op: d.Type, text: strings.TrimSuffix(line, "\n")})
		}
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "--- %s\n+++ %s (generated)\n", name, name)

	skipped, printed := false, false

	for i, l := range all {
		if l.op == diffmatchpatch.DiffEqual && !nearChange(all, i) {
			skipped = true
			continue
		}

		if skipped && printed {
			sb.WriteString("@@\n")
		}

		skipped, printed = false, true

		switch l.op {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("-" + l.text + "\n")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("+" + l.text + "\n")
		default:
			sb.WriteString(" " + l.text + "\n")
		}
	}

	return sb.String()
}

// nearChange reports whether line i is within diffContext lines of a change.
func nearChange(all []diffLine, i int) bool {
	for j := max(0, i-diffContext); j <= min(len(all)-1, i+diffContext); j++ {
		if all[j].op != diffmatchpatch.DiffEqual {
			return true
		}
	}

	return false
}
