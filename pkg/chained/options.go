package chained

import "github.com/google/uuid"

// Options configure a chain lineage. They are fixed at the seed and
// inherited by every chain composed from it.
type Options struct {
	ID       uuid.UUID
	Observer Observer
}

type Option func(*Options)

// WithID sets the lineage id instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(o *Options) {
		o.ID = id
	}
}

// WithObserver reports composition and evaluation of the lineage to obs.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return o
}
