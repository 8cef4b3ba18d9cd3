package chained

// Eval consumes c and runs every pending step in the order it was appended,
// returning the final value. A panic inside a step propagates unchanged.
// Panics with a *ConsumedError if c was already consumed.
func (c *Chain[T]) Eval() T {
	v, err := c.TryEval()
	if err != nil {
		panic(err)
	}
	return v
}

// TryEval is Eval returning an error instead of panicking on reuse.
// Failures inside steps are not converted to errors.
func (c *Chain[T]) TryEval() (T, error) {
	head, err := c.take(OpEval)
	if err != nil {
		var zero T
		return zero, err
	}

	if c.observer != nil {
		if done := c.observer.Evaluating(c.info(OpEval)); done != nil {
			defer done()
		}
	}
	return run[T](head, c.depth), nil
}

// run walks back from head to the seed, then applies the collected steps
// oldest first. It never recurses, so chain length does not grow the stack.
func run[T any](head *node, depth int) T {
	steps := make([]func(any) any, depth)
	n := head
	for i := depth - 1; i >= 0; i-- {
		steps[i] = n.step
		n = n.prior
	}

	v := n.seed
	for i, step := range steps {
		steps[i] = nil
		v = step(v)
	}

	out, _ := v.(T)
	return out
}
