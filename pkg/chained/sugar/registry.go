package sugar

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/ib-77/chained/pkg/chained"
)

// Registry maps names to steps for use in scripts.
type Registry struct {
	mu    sync.RWMutex
	steps map[string]any
	opts  []chained.Option
}

// NewRegistry creates an empty registry. opts are applied to every chain
// seeded by Compile or Run.
func NewRegistry(opts ...chained.Option) *Registry {
	return &Registry{
		steps: make(map[string]any),
		opts:  opts,
	}
}

// Register adds fn under name. fn must be a unary func.
func (r *Registry) Register(name string, fn any) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !isUnary(reflect.ValueOf(fn)) {
		return &StepError{Name: name, Err: ErrNotUnary}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.steps[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStep, name)
	}
	r.steps[name] = fn
	return nil
}

// MustRegister is Register panicking on error.
func (r *Registry) MustRegister(name string, fn any) *Registry {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the step registered under name.
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.steps[name]
	return fn, ok
}

func (r *Registry) resolve(names []string) ([]any, error) {
	steps := make([]any, len(names))
	for i, name := range names {
		fn, ok := r.Lookup(name)
		if !ok {
			return nil, &StepError{Index: i, Name: name, Err: ErrUnknownStep}
		}
		steps[i] = fn
	}
	return steps, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return r == ',' || r == '=' || r == '>' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
