package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"github.com/Orange-Icepop/ReverseMutty/internal/generator"
	"github.com/Orange-Icepop/ReverseMutty/internal/parser"
)

// Runner orchestrates parser and generator layers.
type Runner interface {
	Run(ctx context.Context, cfg *Config) error
}

type runnerImpl struct {
	parser    parser.Parser
	generator generator.Generator
	registrar generator.Registrar
}

// NewRunner creates a default runner implementation.
func NewRunner(p parser.Parser, g generator.Generator, r generator.Registrar) Runner {
	return &runnerImpl{parser: p, generator: g, registrar: r}
}

// Run executes a single generation cycle. Each marked type is processed
// independently and in parallel; a type that fails to generate is logged
// and skipped without aborting the batch.
func (r *runnerImpl) Run(ctx context.Context, cfg *Config) error {
	results, err := r.parser.Extract(ctx, cfg.Patterns...)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	filter := toNameSet(cfg.Types)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	scheduled := 0
	for _, res := range results {
		logDiagnostics(res.Diags)
		for _, s := range res.Schemas {
			if len(filter) > 0 && !filter[s.Name] {
				continue
			}
			if cfg.DumpSchema {
				fmt.Fprint(os.Stderr, spew.Sdump(s))
			}
			scheduled++
			dir := res.Dir
			eg.Go(func() error {
				// Whole-type cancellation granularity: a type is either
				// fully processed or not started.
				if err := ctx.Err(); err != nil {
					return err
				}
				art, err := r.generator.Generate(s)
				if err != nil {
					log.Printf("mutty: warning: %s.%s: %v, skipped", s.PkgPath, s.Name, err)
					return nil
				}
				return r.registrar.Register(dir, art)
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	if scheduled == 0 {
		return fmt.Errorf("no marked types found in %v", cfg.Patterns)
	}
	return nil
}

func toNameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func logDiagnostics(diags []parser.Diagnostic) {
	for _, d := range diags {
		log.Printf("mutty: warning: %s: %s", d.Pos, d.Msg)
	}
}
