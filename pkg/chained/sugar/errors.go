package sugar

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotUnary        = errors.New("sugar: step is not a func with one parameter and one result")
	ErrStepType        = errors.New("sugar: step parameter does not accept previous result")
	ErrResultType      = errors.New("sugar: result not assignable to requested type")
	ErrNoSteps         = errors.New("sugar: at least one step required")
	ErrUnknownStep     = errors.New("sugar: unknown step")
	ErrDuplicateStep   = errors.New("sugar: step already registered")
	ErrInvalidName     = errors.New("sugar: invalid step name")
	ErrMixedSeparators = errors.New("sugar: separators ',' and '=>' cannot be mixed")
	ErrEmptyStep       = errors.New("sugar: empty step")
	ErrEagerScript     = errors.New("sugar: eager script must be run")
)

// StepError locates a construction failure in a step list.
// Index is zero-based; Index equal to the step count refers to the result.
type StepError struct {
	Index int
	Name  string
	Want  reflect.Type
	Got   reflect.Type
	Err   error
}

func (e *StepError) Error() string {
	where := fmt.Sprintf("step %d", e.Index)
	if e.Name != "" {
		where = fmt.Sprintf("step %d (%s)", e.Index, e.Name)
	}
	if e.Want != nil {
		return fmt.Sprintf("%s: %v: want %v, got %v", where, e.Err, e.Want, typeName(e.Got))
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
