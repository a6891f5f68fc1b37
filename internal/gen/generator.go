// Package gen generates the Go code of unit packages from their unit tables.
package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/birdayz/kunits/internal/table"
	"github.com/birdayz/kunits/internal/unitgraph"
)

// DefaultOutput is the file name written next to a table when a job has no
// explicit output.
const DefaultOutput = "zz_generated.units.go"

// Job generates one output file from one table.
type Job struct {
	Table  string
	Output string
}

func (j Job) output() string {
	if j.Output != "" {
		return j.Output
	}
	return filepath.Join(filepath.Dir(j.Table), DefaultOutput)
}

// Generator runs generation jobs.
type Generator struct {
	log         logr.Logger
	concurrency int
	dryRun      bool
}

// Option is a function that configures a Generator
type Option func(*Generator)

// WithLogger sets the logger. Resolved tables are dumped at verbosity 2.
var WithLogger = func(log logr.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithConcurrency sets the number of tables generated in parallel.
var WithConcurrency = func(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.concurrency = n
		}
	}
}

// WithDryRun renders every table without writing output files.
var WithDryRun = func(dryRun bool) Option {
	return func(g *Generator) {
		g.dryRun = dryRun
	}
}

// New creates a Generator. It logs nothing unless WithLogger is given.
func New(opts ...Option) *Generator {
	g := &Generator{
		log:         logr.Discard(),
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run executes all jobs. The first failing job cancels the others and its
// error is returned.
func (g *Generator) Run(ctx context.Context, jobs ...Job) error {
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.concurrency)

	for _, job := range jobs {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.Generate(job)
		})
	}

	return grp.Wait()
}

// Generate executes a single job.
func (g *Generator) Generate(job Job) error {
	log := g.log.WithValues("table", job.Table)

	t, err := table.Load(job.Table)
	if err != nil {
		return err
	}

	resolved, err := unitgraph.Resolve(t)
	if err != nil {
		return fmt.Errorf("%s: %w", job.Table, err)
	}

	if v := log.V(2); v.Enabled() {
		v.Info("Resolved table", "dump", spew.Sdump(t), "depth", resolved.Depth())
	}

	src, err := Render(filepath.Base(job.Table), t, resolved)
	if err != nil {
		return fmt.Errorf("%s: %w", job.Table, err)
	}

	out := job.output()
	if g.dryRun {
		log.Info("Rendered table", "output", out, "units", len(t.Units), "bytes", len(src))
		return nil
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	log.Info("Generated units", "output", out, "units", len(t.Units))
	return nil
}
