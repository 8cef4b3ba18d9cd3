package chained

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrConsumed = errors.New("chained: chain already consumed")
	ErrNilStep  = errors.New("chained: nil step")
)

// ConsumedError reports an operation attempted on a consumed chain.
type ConsumedError struct {
	ID    uuid.UUID
	Depth int
	Op    Op
}

func (e *ConsumedError) Error() string {
	return fmt.Sprintf("chained: %s on consumed chain %s (depth %d)", e.Op, e.ID, e.Depth)
}

func (e *ConsumedError) Unwrap() error {
	return ErrConsumed
}

// IsConsumed reports whether err comes from reusing a consumed chain.
func IsConsumed(err error) bool {
	return errors.Is(err, ErrConsumed)
}
