// kunitgen generates unit packages from unit tables.
//
// Usage:
//
//	kunitgen [--out FILE] [--verbose N] [--dry-run] TABLE...
//
// Without --out, each table's output is written next to it as
// zz_generated.units.go. Unit packages invoke it through go:generate:
//
//	//go:generate go run github.com/birdayz/kunits/cmd/kunitgen units.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zerologr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/birdayz/kunits/internal/gen"
	"github.com/birdayz/kunits/pkg/log"
)

type options struct {
	out         string
	verbosity   int
	concurrency int
	dryRun      bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.out, "out", "o", "", "output file; only valid with a single table")
	fs.IntVarP(&o.verbosity, "verbose", "v", 0, "log verbosity; 2 dumps resolved tables")
	fs.IntVar(&o.concurrency, "concurrency", 4, "number of tables generated in parallel")
	fs.BoolVar(&o.dryRun, "dry-run", false, "render tables without writing files")
}

func newCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "kunitgen TABLE...",
		Short:         "Generate unit packages from unit tables",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}
	opts.bind(cmd.Flags())

	return cmd
}

func run(ctx context.Context, opts *options, tables []string) error {
	if opts.out != "" && len(tables) > 1 {
		return fmt.Errorf("--out requires exactly one table, got %d", len(tables))
	}

	zlog := log.New(opts.verbosity)
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	logger := zerologr.New(zlog).WithName("kunitgen")

	g := gen.New(
		gen.WithLogger(logger),
		gen.WithConcurrency(opts.concurrency),
		gen.WithDryRun(opts.dryRun),
	)

	jobs := make([]gen.Job, 0, len(tables))
	for _, t := range tables {
		jobs = append(jobs, gen.Job{Table: t, Output: opts.out})
	}

	if err := g.Run(ctx, jobs...); err != nil {
		logger.Error(err, "Generation failed")
		return err
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
