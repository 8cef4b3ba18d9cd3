package chained

import "github.com/google/uuid"

// Op names a chain operation.
type Op string

const (
	OpThen Op = "then"
	OpEval Op = "eval"
)

// Info describes the chain an Observer is told about.
type Info struct {
	ID    uuid.UUID
	Depth int
	Op    Op
}

// Observer receives lifecycle notifications for a chain lineage.
// Calls are made synchronously from the goroutine using the chain.
type Observer interface {
	// Composed is called after a step was appended; Depth counts it.
	Composed(info Info)
	// Evaluating is called before the first step runs. The returned func,
	// if any, is called once evaluation returns or a step panics.
	Evaluating(info Info) func()
	// Rejected is called when a consumed chain is used again.
	Rejected(info Info, err error)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnComposed   func(info Info)
	OnEvaluating func(info Info) func()
	OnRejected   func(info Info, err error)
}

func (o ObserverFuncs) Composed(info Info) {
	if o.OnComposed != nil {
		o.OnComposed(info)
	}
}

func (o ObserverFuncs) Evaluating(info Info) func() {
	if o.OnEvaluating != nil {
		return o.OnEvaluating(info)
	}
	return nil
}

func (o ObserverFuncs) Rejected(info Info, err error) {
	if o.OnRejected != nil {
		o.OnRejected(info, err)
	}
}
