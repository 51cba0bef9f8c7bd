package pipeline

//go:generate go tool stringer -type=Stage -linecomment -output=stage_string.go

// Stage is one step of a run. Stages run in declaration order and a failing
// stage ends the run.
type Stage int

const (
	_ Stage = iota

	StageConsumeEntities      // consume entities
	StageConsumeRelationships // consume relationships
	StageLink                 // link
	StageRender               // render
)
