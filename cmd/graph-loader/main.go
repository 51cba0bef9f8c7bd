// Package main provides the CLI entrypoint for graph-loader.
//
// graph-loader reads a dataset (an Excel workbook, a SQLite file or a
// Postgres database), applies a YAML mapping of entity and relationship
// definitions to it, and prints a Cypher script that creates the resulting
// graph:
//
//	graph-loader -mapping mapping.yaml -data people.xlsx -out graph.cypher
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"graph-loader/internal/config"
	"graph-loader/internal/cypher"
	"graph-loader/internal/logger"
	"graph-loader/internal/mapping"
	"graph-loader/internal/pipeline"
	"graph-loader/internal/tabular"
	"graph-loader/internal/tabular/sqlsource"
	"graph-loader/internal/tabular/xlsx"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "graph-loader:", err)
		}

		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("graph-loader", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		mappingArg = fs.String("mapping", "", "YAML mapping file")
		dataArg    = fs.String("data", "", "workbook path, SQLite file or Postgres URL")
		formatArg  = fs.String("format", "", "data format: auto, xlsx, sqlite or postgres")
		outArg     = fs.String("out", "", "write the script to this file instead of stdout")
		logArg     = fs.String("log-mode", "", "log mode: dev, prod or quiet")
		dupArg     = fs.String("duplicates", "", "duplicate entities: overwrite or reject")
		seedArg    = fs.Uint64("seed", 0, "seed for deferred lookup ids")
		seqArg     = fs.Bool("sequential-ids", false, "number deferred lookups 1, 2, ...")
		dumpArg    = fs.Bool("dump", false, "dump resolved records to stderr")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mapping":
			cfg.Mapping = *mappingArg
		case "data":
			cfg.Data = *dataArg
		case "format":
			cfg.Format = *formatArg
		case "out":
			cfg.Out = *outArg
		case "log-mode":
			cfg.LogMode = *logArg
		case "duplicates":
			cfg.Duplicates = *dupArg
		case "seed":
			cfg.Seed = *seedArg
		case "sequential-ids":
			cfg.SequentialIDs = *seqArg
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	log = log.With("run_id", uuid.NewString())

	spec, err := loadMapping(cfg.Mapping, log)
	if err != nil {
		return err
	}

	src, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	log.Info("source opened", "data", cfg.Data, "format", cfg.DataFormat(), "sheets", len(src.SheetNames()))

	policy, err := cfg.DuplicatePolicy()
	if err != nil {
		return err
	}

	out, err := pipeline.Generate(src, spec,
		pipeline.WithLogger(log),
		pipeline.WithDuplicates(policy),
		pipeline.WithIDSource(cfg.IDSource()),
	)
	if err != nil {
		return err
	}

	if *dumpArg {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		dumper.Fdump(stderr, out.Result.Deferred, out.Result.Entities, out.Result.Relationships)
	}

	if cfg.Out == "" {
		_, err = io.WriteString(stdout, out.Script)
		return err
	}

	if err := cypher.WriteFile(cfg.Out, out.Script); err != nil {
		return err
	}

	log.Info("script written", "out", cfg.Out)

	return nil
}

func loadMapping(path string, log *logger.Logger) (*mapping.Specification, error) {
	mf, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	reg := mapping.NewRegistry()

	diags := mapping.Validate(mf, reg)
	for _, d := range diags.Warnings {
		log.Warn(d.Message, "code", d.Code, "definition", d.Definition, "attribute", d.Attribute)
	}

	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("invalid mapping %s: %w", path, err)
	}

	return mapping.Compile(mf, reg)
}

func openSource(ctx context.Context, cfg *config.Config) (tabular.Source, func(), error) {
	switch format := cfg.DataFormat(); format {
	case config.FormatXLSX:
		wb, err := xlsx.Open(cfg.Data)
		if err != nil {
			return nil, nil, err
		}

		return wb, func() { _ = wb.Close() }, nil
	case config.FormatSQLite, config.FormatPostgres:
		src, err := sqlsource.Open(ctx, format, cfg.Data)
		if err != nil {
			return nil, nil, err
		}

		return src, func() { _ = src.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported data format %q", format)
	}
}
