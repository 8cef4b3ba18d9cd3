// Package chained builds lazy single-value transformation chains.
//
// A chain is a seed value plus an ordered list of pending steps. Steps are
// recorded when composed and run only when the chain is evaluated, oldest
// first. Every chain is single-use: composing or evaluating it consumes it.
//
// Key operations:
// - New/NewWith: start a chain from any value, optionally with a first step
// - Then/TryThen: append a step T -> U, producing a Chain[U]
// - Then2/Then3: append several typed steps in one call
// - Eval/TryEval: run every pending step and return the final value
//
// Go methods cannot introduce type parameters, so composition is a package
// level function:
//
//	c := chained.New(5)
//	d := chained.Then(c, func(x int) int { return x * 2 })
//	s := chained.Then(d, strconv.Itoa)
//	fmt.Println(s.Eval()) // "10"
//
// Reusing a consumed chain panics with a *ConsumedError; the Try variants
// return it instead.
package chained
