// Package registry is the load-by-identifier capability used by the loader.
//
// Fixture packages register a load function under their module identifier,
// usually from an init function:
//
//	func init() {
//	    registry.Register("fixtures.http.client", func(ctx context.Context) error {
//	        return setupClientFixtures(ctx)
//	    })
//	}
//
// Loading an identifier runs its load function once; later loads of the same
// identifier are no-ops, the way a module cache behaves.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrLoad matches every failure to load a module, including ErrNotFound.
var ErrLoad = errors.New("module load failed")

// ErrNotFound is returned when no load function is registered for an identifier.
var ErrNotFound = fmt.Errorf("%w: module not found", ErrLoad)

// LoadFunc runs a module's registration work.
type LoadFunc func(ctx context.Context) error

// LoadError reports a load function that failed.
type LoadError struct {
	ID  string
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.ID, e.Err)
}

// Unwrap exposes both the load sentinel and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// Registry maps module identifiers to load functions.
type Registry struct {
	mu      sync.Mutex
	modules map[string]LoadFunc
	loaded  map[string]bool
}

// Default is the registry used by the package-level functions.
var Default = New()

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		modules: make(map[string]LoadFunc),
		loaded:  make(map[string]bool),
	}
}

// Register records fn as the load function for id, replacing any previous one.
func (r *Registry) Register(id string, fn LoadFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.modules[id] = fn
	delete(r.loaded, id)
}

// Load runs the load function registered for id unless it already succeeded.
func (r *Registry) Load(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	fn, ok := r.modules[id]
	done := r.loaded[id]
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if done {
		return nil
	}

	if fn != nil {
		if err := fn(ctx); err != nil {
			return &LoadError{ID: id, Err: err}
		}
	}

	r.mu.Lock()
	r.loaded[id] = true
	r.mu.Unlock()

	return nil
}

// Loaded reports whether id has been loaded successfully.
func (r *Registry) Loaded(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loaded[id]
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.modules))
	for id := range r.modules {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Register records fn for id in the Default registry.
func Register(id string, fn LoadFunc) {
	Default.Register(id, fn)
}
