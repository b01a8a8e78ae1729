package plan

//go:generate go tool stringer -type=Stage -trimprefix=Stage -output=stage_string.go

// Stage is a step of directive resolution and generation.
type Stage int

const (
	StageParseArgs Stage = iota
	StageLoadFile
	StageValidateAndOrder
	StageDeriveIdentifiers
	StageEmit
	StageDone
	StageCompileError
)
