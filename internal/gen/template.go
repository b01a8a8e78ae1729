package gen

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"labelgen/internal/analyze"
	"labelgen/internal/common"
	"labelgen/internal/plan"
)

// templateData holds all data needed for the labels template.
type templateData struct {
	Header        string
	PackageName   string
	TypeName      string
	Recv          string
	Source        string
	LabelNum      string
	FromLabelID   string
	Count         int
	UnknownPrefix string
	Comments      bool
	Variants      []variantData
	// Cases holds the first variant of every id, in id order.
	Cases []variantData
}

// variantData is one generated constant.
type variantData struct {
	Const   string
	ID      uint32
	Label   string
	AliasOf string
}

// CaseList returns the constants of cases joined for a case clause.
func (d *templateData) CaseList() string {
	names := make([]string, 0, len(d.Cases))
	for _, c := range d.Cases {
		names = append(names, c.Const)
	}

	return strings.Join(names, ", ")
}

// buildTemplateData constructs the template data from a label set.
func (g *Generator) buildTemplateData(set *plan.LabelSet) *templateData {
	data := &templateData{
		Header:        analyze.GeneratedHeader,
		PackageName:   set.PkgName,
		TypeName:      set.TypeName(),
		Recv:          receiverName(set),
		Source:        sourceName(set),
		LabelNum:      set.LabelNumName(),
		FromLabelID:   set.FromLabelIDName(),
		Count:         set.LabelNum(),
		UnknownPrefix: common.UnknownStr,
		Comments:      g.config.GenerateComments,
	}

	first := make(map[uint32]string, len(set.Variants))

	for _, v := range set.Variants {
		vd := variantData{Const: v.Const, ID: v.ID, Label: v.Label}

		if v.Alias {
			vd.AliasOf = first[v.ID]
		} else {
			first[v.ID] = v.Const
			data.Cases = append(data.Cases, vd)
		}

		data.Variants = append(data.Variants, vd)
	}

	return data
}

// receiverName picks a receiver that shadows none of the constants used in
// method bodies.
func receiverName(set *plan.LabelSet) string {
	taken := map[string]bool{set.TypeName(): true, "id": true}
	for _, name := range plan.ReservedNames {
		taken[name] = true
	}

	for _, v := range set.Variants {
		taken[v.Const] = true
	}

	r, _ := utf8.DecodeRuneInString(set.TypeName())

	for _, name := range []string{string(unicode.ToLower(r)), "v", "x"} {
		if !taken[name] && token.IsIdentifier(name) {
			return name
		}
	}

	for i := 0; ; i++ {
		if name := fmt.Sprintf("v%d", i); !taken[name] {
			return name
		}
	}
}

// sourceName returns the mapping path relative to the package directory,
// with forward slashes so output does not depend on the OS.
func sourceName(set *plan.LabelSet) string {
	rel, err := filepath.Rel(set.Dir, set.MappingPath)
	if err != nil || set.Dir == "" {
		return filepath.Base(set.MappingPath)
	}

	return filepath.ToSlash(rel)
}

var labelsTemplate = template.Must(template.New("labels").Parse(`{{.Header}}

package {{.PackageName}}

import "strconv"
{{if .Variants}}
{{if .Comments}}// Labels of {{.TypeName}}, generated from {{.Source}}.
{{end}}const (
{{range .Variants}}	{{.Const}} {{$.TypeName}} = {{.ID}}{{if .AliasOf}} // same id as {{.AliasOf}}{{end}}
{{end}})
{{end}}
{{if .Comments}}// {{.LabelNum}} is the number of labels of {{.TypeName}}.
{{end}}const {{.LabelNum}} = {{.Count}}

{{if .Comments}}// {{.FromLabelID}} returns the {{.TypeName}} with the given label id. An id
// missing from the mapping gives an unknown {{.TypeName}} carrying the id.
{{end}}func {{.FromLabelID}}(id uint32) {{.TypeName}} {
	return {{.TypeName}}(id)
}

{{if .Comments}}// LabelNum returns {{.LabelNum}}.
{{end}}func ({{.TypeName}}) LabelNum() uint32 {
	return {{.LabelNum}}
}

{{if .Comments}}// FromLabelID returns {{.FromLabelID}}(id).
{{end}}func ({{.TypeName}}) FromLabelID(id uint32) {{.TypeName}} {
	return {{.FromLabelID}}(id)
}

{{if .Comments}}// LabelStr returns the mapping key of {{.Recv}}, or "{{.UnknownPrefix}}" followed by
// the id for an unknown {{.TypeName}}.
{{end}}func ({{.Recv}} {{.TypeName}}) LabelStr() string {
{{- if .Cases}}
	switch {{.Recv}} {
{{- range .Cases}}
	case {{.Const}}:
		return {{printf "%q" .Label}}
{{- end}}
	}
{{end}}
	return "{{.UnknownPrefix}}" + strconv.FormatUint(uint64({{.Recv}}), 10)
}

{{if .Comments}}// LabelID returns the label id of {{.Recv}}.
{{end}}func ({{.Recv}} {{.TypeName}}) LabelID() uint32 {
	return uint32({{.Recv}})
}

{{if .Comments}}// IsUnknown reports whether {{.Recv}} is not in the mapping.
{{end}}func ({{.Recv}} {{.TypeName}}) IsUnknown() bool {
{{- if .Cases}}
	switch {{.Recv}} {
	case {{.CaseList}}:
		return false
	}
{{end}}
	return true
}

{{if .Comments}}// String returns {{.Recv}}.LabelStr().
{{end}}func ({{.Recv}} {{.TypeName}}) String() string {
	return {{.Recv}}.LabelStr()
}

{{if .Comments}}// GoString returns the Go syntax of {{.Recv}}.
{{end}}func ({{.Recv}} {{.TypeName}}) GoString() string {
{{- if .Cases}}
	switch {{.Recv}} {
{{- range .Cases}}
	case {{.Const}}:
		return "{{$.PackageName}}.{{.Const}}"
{{- end}}
	}
{{end}}
	return "{{.PackageName}}.{{.TypeName}}(" + strconv.FormatUint(uint64({{.Recv}}), 10) + ")"
}
`))
