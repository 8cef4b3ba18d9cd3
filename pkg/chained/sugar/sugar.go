package sugar

import (
	"reflect"

	"github.com/ib-77/chained/pkg/chained"
)

// step is a validated unary func.
type step struct {
	fn reflect.Value
	in reflect.Type
}

func (s step) call(v any) any {
	arg := reflect.ValueOf(v)
	if !arg.IsValid() {
		arg = reflect.Zero(s.in)
	}
	return s.fn.Call([]reflect.Value{arg})[0].Interface()
}

// Lazy builds an unevaluated chain: seed, then every step in order.
func Lazy[T any](seed any, steps ...any) (*chained.Chain[T], error) {
	return lazy[T](seed, nil, steps, nil)
}

// Eager builds the chain and evaluates it.
func Eager[T any](seed any, steps ...any) (T, error) {
	c, err := Lazy[T](seed, steps...)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Eval(), nil
}

// Extend appends steps to an existing chain. c is consumed only when every
// step has been validated.
func Extend[S, T any](c *chained.Chain[S], steps ...any) (*chained.Chain[T], error) {
	return extend[S, T](c, nil, steps)
}

// ExtendEval appends steps to an existing chain and evaluates it.
func ExtendEval[S, T any](c *chained.Chain[S], steps ...any) (T, error) {
	out, err := Extend[S, T](c, steps...)
	if err != nil {
		var zero T
		return zero, err
	}
	return out.Eval(), nil
}

func lazy[T any](seed any, names []string, steps []any, opts []chained.Option) (*chained.Chain[T], error) {
	checked, err := check(reflect.TypeOf(seed), reflect.TypeFor[T](), names, steps)
	if err != nil {
		return nil, err
	}
	if len(checked) == 0 {
		return chained.New(as[T](seed), opts...), nil
	}
	return compose[any, T](chained.New(seed, opts...), checked)
}

func extend[S, T any](c *chained.Chain[S], names []string, steps []any) (*chained.Chain[T], error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	checked, err := check(reflect.TypeFor[S](), reflect.TypeFor[T](), names, steps)
	if err != nil {
		return nil, err
	}
	return compose[S, T](c, checked)
}

// check validates the step list against the type flowing into it and the
// requested result type.
func check(from, result reflect.Type, names []string, steps []any) ([]step, error) {
	nameOf := func(i int) string {
		if i < len(names) {
			return names[i]
		}
		return ""
	}

	out := make([]step, 0, len(steps))
	cur := from
	for i, raw := range steps {
		fn := reflect.ValueOf(raw)
		if !isUnary(fn) {
			return nil, &StepError{Index: i, Name: nameOf(i), Err: ErrNotUnary}
		}
		in := fn.Type().In(0)
		if !accepts(in, cur) {
			return nil, &StepError{Index: i, Name: nameOf(i), Want: in, Got: cur, Err: ErrStepType}
		}
		out = append(out, step{fn: fn, in: in})
		cur = fn.Type().Out(0)
	}

	if !accepts(result, cur) {
		return nil, &StepError{Index: len(steps), Want: result, Got: cur, Err: ErrResultType}
	}
	return out, nil
}

// compose appends the checked steps to c; only the first append can fail.
func compose[S, T any](c *chained.Chain[S], steps []step) (*chained.Chain[T], error) {
	first, last := steps[0], steps[len(steps)-1]
	if len(steps) == 1 {
		return chained.TryThen(c, func(s S) T { return as[T](first.call(s)) })
	}

	next, err := chained.TryThen(c, func(s S) any { return first.call(s) })
	if err != nil {
		return nil, err
	}
	for _, s := range steps[1 : len(steps)-1] {
		next = chained.Then(next, s.call)
	}
	return chained.Then(next, func(v any) T { return as[T](last.call(v)) }), nil
}

func isUnary(fn reflect.Value) bool {
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return false
	}
	t := fn.Type()
	return t.NumIn() == 1 && t.NumOut() == 1 && !t.IsVariadic()
}

// accepts reports whether a value of type got can be passed as want.
// A nil got is an untyped nil.
func accepts(want, got reflect.Type) bool {
	if got == nil {
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return true
		}
		return false
	}
	return got.AssignableTo(want)
}

// as converts v to T; the assignment was validated by check.
func as[T any](v any) T {
	var out T
	if v == nil {
		return out
	}
	reflect.ValueOf(&out).Elem().Set(reflect.ValueOf(v))
	return out
}
