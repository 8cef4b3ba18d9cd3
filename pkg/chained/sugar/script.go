package sugar

import (
	"strings"

	"github.com/ib-77/chained/pkg/chained"
)

const (
	eagerMarker = ">>"
	arrowSep    = "=>"
	commaSep    = ","
)

// Script is a parsed step list.
type Script struct {
	Eager bool
	Steps []string
}

// Parse reads "f1, f2" or "f1 => f2", optionally prefixed by ">>" for the
// eager form. An empty list is the zero-step script.
func Parse(src string) (Script, error) {
	var s Script
	src = strings.TrimSpace(src)
	if rest, ok := strings.CutPrefix(src, eagerMarker); ok {
		s.Eager = true
		src = strings.TrimSpace(rest)
	}
	if src == "" {
		return s, nil
	}

	hasArrow, hasComma := strings.Contains(src, arrowSep), strings.Contains(src, commaSep)
	if hasArrow && hasComma {
		return Script{}, ErrMixedSeparators
	}
	sep := commaSep
	if hasArrow {
		sep = arrowSep
	}

	for i, part := range strings.Split(src, sep) {
		name := strings.TrimSpace(part)
		if name == "" {
			return Script{}, &StepError{Index: i, Err: ErrEmptyStep}
		}
		s.Steps = append(s.Steps, name)
	}
	return s, nil
}

// Compile expands a lazy script over r into an unevaluated chain.
func Compile[T any](r *Registry, seed any, src string) (*chained.Chain[T], error) {
	s, err := Parse(src)
	if err != nil {
		return nil, err
	}
	if s.Eager {
		return nil, ErrEagerScript
	}
	return expand[T](r, seed, s)
}

// Run expands a script over r and evaluates it. The ">>" marker is optional.
func Run[T any](r *Registry, seed any, src string) (T, error) {
	var zero T
	s, err := Parse(src)
	if err != nil {
		return zero, err
	}
	c, err := expand[T](r, seed, s)
	if err != nil {
		return zero, err
	}
	return c.Eval(), nil
}

func expand[T any](r *Registry, seed any, s Script) (*chained.Chain[T], error) {
	steps, err := r.resolve(s.Steps)
	if err != nil {
		return nil, err
	}
	return lazy[T](seed, s.Steps, steps, r.opts)
}
