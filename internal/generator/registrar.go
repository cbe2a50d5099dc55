package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Registrar receives generated artifacts. It is the registration
// collaborator: the engine produces artifacts, the registrar turns them
// into compilation inputs.
type Registrar interface {
	Register(dir string, a Artifact) error
}

type fileRegistrar struct{}

type streamRegistrar struct {
	mu sync.Mutex
	w  io.Writer
}

// NewFileRegistrar registers artifacts as files next to the source package.
// Re-registering an OutputID overwrites the previous content.
func NewFileRegistrar() Registrar {
	return &fileRegistrar{}
}

// NewStreamRegistrar writes artifacts to w instead of disk, for dry runs.
// Safe for concurrent registration.
func NewStreamRegistrar(w io.Writer) Registrar {
	return &streamRegistrar{w: w}
}

func (r *fileRegistrar) Register(dir string, a Artifact) error {
	name := filepath.Join(dir, a.FileName())
	if err := os.WriteFile(name, []byte(a.SourceText), 0o644); err != nil {
		return fmt.Errorf("register %s: %w", a.OutputID, err)
	}
	return nil
}

func (r *streamRegistrar) Register(dir string, a Artifact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.w, "-- %s --\n%s\n", a.OutputID, a.SourceText); err != nil {
		return fmt.Errorf("register %s: %w", a.OutputID, err)
	}
	return nil
}
