package signals

import (
	"github.com/hashicorp/go-hclog"
)

type options struct {
	name   string
	logger hclog.Logger
}

// Option configures a Signal created with NewSignal.
type Option func(*options)

// WithName sets the name the signal uses in log records.
// Without it the signal is named after its slot table's UUID.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger makes the signal trace connections, closes and recovered slot panics.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
