package gen

import (
	"os"
	"strings"
)

// writeDebugUnformatted writes source that failed go/format next to the
// intended output and returns its path. The name keeps the .go suffix so
// editors highlight it, without clashing with the real file.
func writeDebugUnformatted(file GeneratedFile) (string, error) {
	debug := file
	debug.Filename = strings.TrimSuffix(file.Filename, ".go") + ".unformatted.go"

	if err := os.MkdirAll(debug.Dir, dirPerm); err != nil {
		return "", err
	}

	return debug.Path(), os.WriteFile(debug.Path(), debug.Content, filePerm)
}
