package ruleset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"
)

// Registry holds compiled schemas by name. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]Schema
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]Schema)}
}

// Register adds schemas. Either all of them are added or, when any name is
// already taken, none are.
func (r *Registry) Register(schemas ...Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.schemas == nil {
		r.schemas = make(map[string]Schema)
	}

	batch := make(map[string]bool, len(schemas))
	for _, s := range schemas {
		if s.Name == "" {
			return fmt.Errorf("%w: schema", ErrMissingName)
		}
		if _, ok := r.schemas[s.Name]; ok || batch[s.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSchema, s.Name)
		}
		batch[s.Name] = true
	}
	for _, s := range schemas {
		r.schemas[s.Name] = s
	}
	return nil
}

func (r *Registry) Get(name string) (Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Lookup is Get returning ErrSchemaNotFound for unknown names.
func (r *Registry) Lookup(name string) (Schema, error) {
	s, ok := r.Get(name)
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return s, nil
}

// Names returns the registered schema names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// LoadFS walks fsys and registers the schemas of every file a parser supports.
// Files no parser supports are skipped. With no parsers given, YAML and JSON
// documents are read.
func (r *Registry) LoadFS(ctx context.Context, fsys fs.FS, parsers ...Parser) error {
	if len(parsers) == 0 {
		parsers = []Parser{NewYAMLParser(), NewJSONParser()}
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(ErrParseCancelled, ctxErr)
		}
		if d.IsDir() {
			return nil
		}

		p, err := ParserForFile(path, parsers...)
		if err != nil {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("ruleset: read %s: %w", path, err)
		}
		if err := r.load(ctx, path, data, p); err != nil {
			return err
		}
		return nil
	})
}

// LoadFile registers the schemas of one file. A nil parser is chosen from the
// file extension.
func (r *Registry) LoadFile(ctx context.Context, path string, p Parser) error {
	if p == nil {
		var err error
		if p, err = ParserForFile(path); err != nil {
			return err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	return r.load(ctx, path, data, p)
}

func (r *Registry) load(ctx context.Context, path string, data []byte, p Parser) error {
	schemas, err := p.Parse(ctx, data)
	if err != nil {
		return fmt.Errorf("ruleset: %s: %w", path, err)
	}
	if err := r.Register(schemas...); err != nil {
		return fmt.Errorf("ruleset: %s: %w", path, err)
	}
	return nil
}
