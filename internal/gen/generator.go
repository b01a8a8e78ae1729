package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"path/filepath"

	"labelgen/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments adds doc comments to every generated declaration.
	GenerateComments bool
	// DebugUnformatted writes the raw template output next to the target as
	// <name>.unformatted.go when it does not pass go/format.
	DebugUnformatted bool
	// Logger receives debug records.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
		DebugUnformatted: true,
		Logger:           slog.New(slog.DiscardHandler),
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "animal_labels.go").
	Filename string
	// TypeName is the enum the file declares labels for.
	TypeName string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates one file per label set of p, in label set order.
func (g *Generator) Generate(p *plan.ResolvedPlan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(p.LabelSets))

	for _, set := range p.LabelSets {
		file, err := g.GenerateSet(set)
		if err != nil {
			return nil, fmt.Errorf("generating labels of %s: %w", set.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateSet generates the labels file of a single enum.
func (g *Generator) GenerateSet(set *plan.LabelSet) (*GeneratedFile, error) {
	set.Stage = plan.StageEmit
	data := g.buildTemplateData(set)

	file := &GeneratedFile{
		Dir:      set.Dir,
		Filename: set.Filename(),
		TypeName: set.TypeName(),
	}

	var buf bytes.Buffer
	if err := labelsTemplate.Execute(&buf, data); err != nil {
		set.Stage = plan.StageCompileError
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		set.Stage = plan.StageCompileError
		file.Content = buf.Bytes()

		if g.config.DebugUnformatted && file.Dir != "" {
			if path, werr := writeDebugUnformatted(*file); werr == nil {
				g.logger.Debug("wrote unformatted source", "path", path)
			}
		}

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted
	set.Stage = plan.StageDone

	g.logger.Debug("generated", "type", set.TypeName(), "file", file.Filename, "labels", data.Count)

	return file, nil
}
