package cli

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Orange-Icepop/ReverseMutty/internal/generator"
	"github.com/Orange-Icepop/ReverseMutty/internal/parser"
)

type fakeParser struct {
	results []*parser.Result
	err     error
}

func (f *fakeParser) Extract(ctx context.Context, patterns ...string) ([]*parser.Result, error) {
	return f.results, f.err
}

type fakeGenerator struct {
	failFor string
}

func (f *fakeGenerator) Generate(s *parser.Schema) (generator.Artifact, error) {
	if s.Name == f.failFor {
		return generator.Artifact{}, errors.New("boom")
	}
	return generator.Artifact{
		OutputID:   "Immutable" + s.Name + ".g",
		SourceText: "// " + s.Name + "\n",
	}, nil
}

type fakeRegistrar struct {
	mu  sync.Mutex
	got map[string]string
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{got: map[string]string{}}
}

func (f *fakeRegistrar) Register(dir string, a generator.Artifact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got[a.OutputID] = a.SourceText
	return nil
}

func resultWith(names ...string) *parser.Result {
	res := &parser.Result{PkgName: "model", PkgPath: "example.com/model", Dir: "/tmp/model"}
	for _, n := range names {
		res.Schemas = append(res.Schemas, &parser.Schema{Name: n, PkgName: "model", PkgPath: "example.com/model"})
	}
	return res
}

func TestRun_RegistersAllSchemas(t *testing.T) {
	reg := newFakeRegistrar()
	r := NewRunner(&fakeParser{results: []*parser.Result{resultWith("Point", "Account")}}, &fakeGenerator{}, reg)

	err := r.Run(context.Background(), &Config{Patterns: []string{"."}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(reg.got) != 2 {
		t.Fatalf("registered %d artifacts, want 2", len(reg.got))
	}
	if _, ok := reg.got["ImmutablePoint.g"]; !ok {
		t.Fatalf("ImmutablePoint.g not registered: %#v", reg.got)
	}
}

func TestRun_TypeFilter(t *testing.T) {
	reg := newFakeRegistrar()
	r := NewRunner(&fakeParser{results: []*parser.Result{resultWith("Point", "Account")}}, &fakeGenerator{}, reg)

	err := r.Run(context.Background(), &Config{Patterns: []string{"."}, Types: []string{"Account"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(reg.got) != 1 {
		t.Fatalf("registered %d artifacts, want 1", len(reg.got))
	}
	if _, ok := reg.got["ImmutableAccount.g"]; !ok {
		t.Fatalf("filter kept wrong artifact: %#v", reg.got)
	}
}

func TestRun_OneFailingTypeDoesNotAbortBatch(t *testing.T) {
	reg := newFakeRegistrar()
	r := NewRunner(
		&fakeParser{results: []*parser.Result{resultWith("Broken", "Point")}},
		&fakeGenerator{failFor: "Broken"},
		reg,
	)

	err := r.Run(context.Background(), &Config{Patterns: []string{"."}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, ok := reg.got["ImmutablePoint.g"]; !ok {
		t.Fatalf("healthy type should still generate: %#v", reg.got)
	}
	if _, ok := reg.got["ImmutableBroken.g"]; ok {
		t.Fatal("failing type must not register")
	}
}

func TestRun_NoMarkedTypes(t *testing.T) {
	r := NewRunner(&fakeParser{}, &fakeGenerator{}, newFakeRegistrar())
	if err := r.Run(context.Background(), &Config{Patterns: []string{"."}}); err == nil {
		t.Fatal("expected error when nothing matched")
	}
}

func TestRun_ParserErrorPropagates(t *testing.T) {
	r := NewRunner(&fakeParser{err: errors.New("load failed")}, &fakeGenerator{}, newFakeRegistrar())
	if err := r.Run(context.Background(), &Config{Patterns: []string{"."}}); err == nil {
		t.Fatal("expected extraction error")
	}
}

func TestRun_CanceledContextSkipsGeneration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := newFakeRegistrar()
	r := NewRunner(&fakeParser{results: []*parser.Result{resultWith("Point")}}, &fakeGenerator{}, reg)

	if err := r.Run(ctx, &Config{Patterns: []string{"."}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if len(reg.got) != 0 {
		t.Fatalf("canceled run must not register artifacts: %#v", reg.got)
	}
}

func TestRun_DuplicateIDsOverwriteDeterministically(t *testing.T) {
	// Two results carrying the same type name produce the same OutputID;
	// the registrar simply keeps the last registration.
	reg := newFakeRegistrar()
	r := NewRunner(
		&fakeParser{results: []*parser.Result{resultWith("Point"), resultWith("Point")}},
		&fakeGenerator{},
		reg,
	)

	if err := r.Run(context.Background(), &Config{Patterns: []string{"."}}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(reg.got) != 1 {
		t.Fatalf("duplicate IDs should collapse to one artifact: %#v", reg.got)
	}
	if reg.got["ImmutablePoint.g"] != "// Point\n" {
		t.Fatalf("unexpected final content: %q", reg.got["ImmutablePoint.g"])
	}
}
