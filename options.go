package ldap

import (
	"errors"

	"github.com/hashicorp/go-hclog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// getOpts - iterate the inbound Options and return a struct.
func getOpts(opt ...Option) (*options, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			if err := o(opts); err != nil {
				return nil, err
			}
		}
	}
	return opts, nil
}

// Option - how Options are passed as arguments.
type Option func(*options) error

type options struct {
	withLogger         hclog.Logger
	withTracerProvider trace.TracerProvider
}

func getDefaultOptions() *options {
	return &options{
		withLogger:         hclog.NewNullLogger(),
		withTracerProvider: otel.GetTracerProvider(),
	}
}

// WithLogger sets the logger the client reports operations to.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("ldap: nil logger")
		}
		o.withLogger = logger
		return nil
	}
}

// WithTracerProvider overrides the global otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) error {
		if tp == nil {
			return errors.New("ldap: nil tracer provider")
		}
		o.withTracerProvider = tp
		return nil
	}
}
