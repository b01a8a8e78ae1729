package plan

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"slices"

	"labelgen/internal/analyze"
	"labelgen/internal/diagnostic"
	"labelgen/internal/directive"
	"labelgen/internal/mapping"
	"labelgen/internal/match"
	"labelgen/internal/naming"
)

// Codes of warnings and infos reported by the resolver.
const (
	// CodeDuplicateID is the warning code for ids shared by several keys.
	CodeDuplicateID = "duplicate_id"
	// CodeNoDirectives is the info code for a package without directives.
	CodeNoDirectives = "no_directives"
)

// Resolver performs the resolution pipeline.
type Resolver struct {
	pkg    *analyze.Package
	config Config
	logger *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(pkg *analyze.Package, config Config) *Resolver {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{
		pkg:    pkg,
		config: config,
		logger: logger,
	}
}

// Resolve runs every directive of the package through the resolution stages.
// The returned error joins every error diagnostic; the plan is returned either
// way so callers can report all of them.
func (r *Resolver) Resolve() (*ResolvedPlan, error) {
	p := &ResolvedPlan{Package: r.pkg}

	if len(r.pkg.Targets) == 0 {
		p.Diagnostics.AddInfo(token.Position{}, CodeNoDirectives,
			fmt.Sprintf("no %s directives in %s", directive.Command, r.pkg.Dir), "")
	}

	for _, t := range r.selectTargets(&p.Diagnostics) {
		set, err := r.resolveTarget(t, &p.Diagnostics)
		if err != nil {
			r.fail(p, t.ID.Name, t.Pos, set.Stage, err)
			continue
		}

		p.LabelSets = append(p.LabelSets, set)
	}

	r.checkCollisions(p)

	p.Diagnostics.Sort()

	return p, p.Diagnostics.Error()
}

// selectTargets applies the Types filter. A filtered type without a
// directive is an error.
func (r *Resolver) selectTargets(diags *diagnostic.Diagnostics) []*analyze.Target {
	if len(r.config.Types) == 0 {
		return r.pkg.Targets
	}

	var out []*analyze.Target

	for _, name := range r.config.Types {
		t := r.pkg.Target(name)
		if t == nil {
			err := fmt.Errorf("type %s has no generate_labels directive in %s", name, r.pkg.Dir)
			if hint, ok := match.Closest(name, r.targetNames()); ok {
				err = fmt.Errorf("%w, did you mean %s?", err, hint)
			}

			diags.AddError(name, err)

			continue
		}

		out = append(out, t)
	}

	return out
}

func (r *Resolver) targetNames() []string {
	var names []string

	for _, t := range r.pkg.Targets {
		if t.ID.Name != "" {
			names = append(names, t.ID.Name)
		}
	}

	return names
}

func (r *Resolver) fail(p *ResolvedPlan, typeName string, pos token.Position, stage Stage, err error) {
	r.logger.Debug("directive failed", "type", typeName, "stage", stage.String(), "error", err)

	p.Failures = append(p.Failures, Failure{
		TypeName: typeName,
		Pos:      pos,
		Stage:    stage,
		Err:      err,
	})

	// Several invalid keys are reported separately.
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			p.Diagnostics.AddError(typeName, e)
		}

		return
	}

	p.Diagnostics.AddError(typeName, err)
}

// resolveTarget runs one directive through ParseArgs, LoadFile,
// ValidateAndOrder and DeriveIdentifiers. The returned set is never nil; its
// Stage is the stage that failed when err is set.
func (r *Resolver) resolveTarget(t *analyze.Target, diags *diagnostic.Diagnostics) (*LabelSet, error) {
	set := &LabelSet{
		ID:      t.ID,
		PkgName: r.pkg.Name,
		Dir:     r.pkg.Dir,
		Pos:     t.Pos,
		Stage:   StageParseArgs,
	}

	path, err := t.Directive.MappingPath(r.pkg.Fset)
	if err != nil {
		return set, diagnostic.At(t.Pos, err)
	}

	set.MappingPath = path
	set.Stage = StageLoadFile
	r.logger.Debug("loading mapping", "type", t.ID.Name, "path", path)

	m, err := mapping.LoadFile(path)
	if err != nil {
		return set, diagnostic.At(t.Pos, err)
	}

	set.Stage = StageValidateAndOrder

	if t.Err != nil {
		return set, diagnostic.At(t.Pos, t.Err)
	}

	entries := m.Ordered()
	r.warnDuplicates(t, m, diags)

	set.Stage = StageDeriveIdentifiers

	variants, err := r.deriveVariants(t, m, entries)
	if err != nil {
		return set, err
	}

	set.Variants = variants
	set.Stage = StageEmit

	r.logger.Debug("resolved", "type", t.ID.Name, "labels", len(variants))

	return set, nil
}

// deriveVariants builds the constants of an enum. Every invalid key is
// reported, not just the first.
func (r *Resolver) deriveVariants(t *analyze.Target, m *mapping.Mapping, entries []mapping.Entry) ([]Variant, error) {
	variants := make([]Variant, 0, len(entries))
	seen := make(map[uint32]bool, len(entries))

	var errs []error

	for _, e := range entries {
		pos := m.Position(e)
		if !pos.IsValid() {
			pos = t.Pos
		}

		ident := naming.Derive(e.Name)
		name := naming.ConstName(ident, t.ID.Name, r.config.Naming)

		if err := naming.Validate(name); err != nil {
			errs = append(errs, diagnostic.Errorf(pos, "key %q: %w", e.Name, err))
			continue
		}

		variants = append(variants, Variant{
			Ident: ident,
			Const: name,
			ID:    e.ID,
			Label: e.Name,
			Pos:   pos,
			Alias: seen[e.ID],
		})
		seen[e.ID] = true
	}

	switch len(errs) {
	case 0:
		return variants, nil
	case 1:
		return nil, errs[0]
	default:
		return nil, errors.Join(errs...)
	}
}

func (r *Resolver) warnDuplicates(t *analyze.Target, m *mapping.Mapping, diags *diagnostic.Diagnostics) {
	dups := m.DuplicateIDs()

	ids := make([]uint32, 0, len(dups))
	for id := range dups {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	for _, id := range ids {
		keys := dups[id]
		diags.AddWarning(t.Pos, CodeDuplicateID,
			fmt.Sprintf("id %d is shared by keys %q; LabelStr returns %q for all of them, so aliases %q do not return their own key",
				id, keys, keys[0], keys[1:]),
			t.ID.Name)
	}
}

// checkCollisions reports identifiers claimed more than once in the package
// scope or in the method set of an enum. A set involved in a collision is
// dropped and gets a single diagnostic listing every colliding group.
func (r *Resolver) checkCollisions(p *ResolvedPlan) {
	if len(p.LabelSets) == 0 {
		return
	}

	var claims []naming.Named

	owner := make(map[string][]*LabelSet)
	claim := func(set *LabelSet, name, source string) {
		claims = append(claims, naming.Named{Name: name, Source: source})
		owner[name] = append(owner[name], set)
	}

	for name, pos := range r.pkg.Declared {
		claims = append(claims, naming.Named{Name: name, Source: "declared at " + pos.String()})
	}

	for _, name := range ReservedNames {
		if _, ok := r.pkg.Declared[name]; !ok {
			claims = append(claims, naming.Named{Name: name, Source: "used by generated code"})
		}
	}

	for _, set := range p.LabelSets {
		claim(set, set.LabelNumName(), "generated "+set.LabelNumName())
		claim(set, set.FromLabelIDName(), "generated "+set.FromLabelIDName())

		for _, v := range set.Variants {
			claim(set, v.Const, fmt.Sprintf("%s key %q", set.TypeName(), v.Label))
		}
	}

	perSet := make(map[*LabelSet][]naming.Collision)

	for _, c := range naming.Collisions(claims) {
		for _, set := range unique(owner[c.Name]) {
			perSet[set] = append(perSet[set], c)
		}
	}

	for _, set := range p.LabelSets {
		methods := r.pkg.Methods[set.TypeName()]
		for _, m := range GeneratedMethods {
			if pos, ok := methods[m]; ok {
				perSet[set] = append(perSet[set], naming.Collision{
					Name:    set.TypeName() + "." + m,
					Sources: []string{"declared at " + pos.String(), "generated method"},
				})
			}
		}
	}

	if len(perSet) == 0 {
		return
	}

	kept := p.LabelSets[:0]

	for _, set := range p.LabelSets {
		collisions, ok := perSet[set]
		if !ok {
			kept = append(kept, set)
			continue
		}

		set.Stage = StageDeriveIdentifiers
		r.fail(p, set.TypeName(), set.Pos, set.Stage, diagnostic.At(set.Pos, naming.CollisionError(collisions)))
	}

	p.LabelSets = kept
}

func unique(sets []*LabelSet) []*LabelSet {
	var out []*LabelSet

	for _, s := range sets {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}

	return out
}
