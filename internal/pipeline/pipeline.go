// Package pipeline runs a mapping specification against a tabular source:
// consume every entity definition, consume every relationship definition,
// link endpoints, render. Any failure ends the run and nothing is written.
package pipeline

import (
	"io"

	"github.com/pkg/errors"

	"graph-loader/internal/cypher"
	"graph-loader/internal/logger"
	"graph-loader/internal/mapping"
	"graph-loader/internal/record"
	"graph-loader/internal/tabular"
	"graph-loader/internal/xref"
)

// Option configures a run.
type Option func(*runner)

// WithLogger sets the logger; the default discards.
func WithLogger(l *logger.Logger) Option {
	return func(r *runner) { r.log = l }
}

// WithDuplicates sets the duplicate entity policy.
func WithDuplicates(p xref.DuplicatePolicy) Option {
	return func(r *runner) { r.linkOpts = append(r.linkOpts, xref.WithDuplicates(p)) }
}

// WithIDSource sets where deferred lookup ids come from.
func WithIDSource(src xref.IDSource) Option {
	return func(r *runner) { r.linkOpts = append(r.linkOpts, xref.WithIDSource(src)) }
}

type runner struct {
	log      *logger.Logger
	linkOpts []xref.Option
}

// Output is a finished run.
type Output struct {
	// Result holds the records the script was rendered from.
	Result *xref.Result
	// Script is the rendered text.
	Script string
}

// Generate runs every stage and returns the records and the script.
func Generate(src tabular.Source, spec *mapping.Specification, opts ...Option) (*Output, error) {
	r := &runner{log: logger.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	entities, err := r.consumeAll(src, StageConsumeEntities, entityDefs(spec))
	if err != nil {
		return nil, err
	}

	relationships, err := r.consumeAll(src, StageConsumeRelationships, relationshipDefs(spec))
	if err != nil {
		return nil, err
	}

	res, err := xref.Link(entities, relationships, r.linkOpts...)
	if err != nil {
		r.log.Error("stage failed", "stage", StageLink, "error", err)
		return nil, errors.Wrapf(err, "%s", StageLink)
	}

	r.log.Info("linked",
		"stage", StageLink,
		"entities", len(res.Entities),
		"indexed", res.Index.Len(),
		"relationships", len(res.Relationships),
		"deferred", len(res.Deferred),
	)

	script, err := cypher.Render(cypher.Graph{
		Deferred:      res.Deferred,
		Entities:      res.Entities,
		Relationships: res.Relationships,
	})
	if err != nil {
		r.log.Error("stage failed", "stage", StageRender, "error", err)
		return nil, errors.Wrapf(err, "%s", StageRender)
	}

	r.log.Info("rendered", "stage", StageRender, "bytes", len(script))

	return &Output{Result: res, Script: script}, nil
}

// Run generates the script and writes it to w. Nothing reaches w unless every
// stage succeeds.
func Run(w io.Writer, src tabular.Source, spec *mapping.Specification, opts ...Option) error {
	out, err := Generate(src, spec, opts...)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out.Script)

	return errors.Wrap(err, "writing script")
}

func (r *runner) consumeAll(src tabular.Source, stage Stage, defs []mapping.Definition) ([]*record.Record, error) {
	var all []*record.Record

	for _, def := range defs {
		cur, err := record.Consume(src, def)
		if err != nil {
			r.log.Error("stage failed", "stage", stage, "definition", def.Name(), "error", err)
			return nil, errors.Wrapf(err, "%s", stage)
		}

		recs, err := record.Collect(cur)
		if err != nil {
			r.log.Error("stage failed", "stage", stage, "definition", def.Name(), "error", err)
			return nil, errors.Wrapf(err, "%s", stage)
		}

		r.log.Debug("consumed", "stage", stage, "definition", def.Name(), "records", len(recs))

		all = append(all, recs...)
	}

	r.log.Info("stage done", "stage", stage, "definitions", len(defs), "records", len(all))

	return all, nil
}

func entityDefs(spec *mapping.Specification) []mapping.Definition {
	es := spec.Entities()
	out := make([]mapping.Definition, len(es))

	for i, e := range es {
		out[i] = e
	}

	return out
}

func relationshipDefs(spec *mapping.Specification) []mapping.Definition {
	rs := spec.Relationships()
	out := make([]mapping.Definition, len(rs))

	for i, r := range rs {
		out[i] = r
	}

	return out
}
