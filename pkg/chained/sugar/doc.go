// Package sugar is a shorthand for building chains from a seed and a list
// of steps. It only expands into calls to package chained and adds no
// semantics of its own.
//
// Forms:
// - Lazy: seed, f1, ..., fn -> unevaluated chain
// - Eager: seed, f1, ..., fn -> evaluated result
// - Extend/ExtendEval: existing chain, f1, ..., fn
// - Parse/Compile/Run: the same forms written as a script over a Registry
//   of named steps, e.g. "trim => count" or ">> trim, count"
//
// Steps are untyped here, so every step is checked when the chain is built:
// it must be a func with one parameter and one result, and its parameter
// must accept the previous result. A mismatch is returned as a *StepError
// and nothing is consumed or run.
package sugar
