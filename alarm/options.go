package alarm

import (
	"errors"

	"github.com/hashicorp/go-hclog"
	"go.uber.org/zap"
)

// getOpts - iterate the inbound Options and return a struct
func getOpts(opt ...Option) (*options, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			if err := o(&opts); err != nil {
				return nil, err
			}
		}
	}
	return &opts, nil
}

// Option - how Options are passed as arguments
type Option func(*options) error

type options struct {
	withName        string
	withMessage     string
	withZapLogger   *zap.Logger
	withHclogLogger hclog.Logger
}

func getDefaultOptions() options {
	return options{
		withMessage: DefaultMessage,
	}
}

// WithName names the Alarm. The name is added to the loggers.
func WithName(name string) Option {
	return func(o *options) error {
		o.withName = name
		return nil
	}
}

// WithMessage sets the message logged on every signal.
func WithMessage(msg string) Option {
	return func(o *options) error {
		if msg == "" {
			return errors.New("alarm: message must not be empty")
		}
		o.withMessage = msg
		return nil
	}
}

// WithZapLogger logs signals to logger.
func WithZapLogger(logger *zap.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("alarm: nil zap logger")
		}
		o.withZapLogger = logger
		return nil
	}
}

// WithHclogLogger logs signals to logger, in addition to any zap logger.
func WithHclogLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("alarm: nil hclog logger")
		}
		o.withHclogLogger = logger
		return nil
	}
}
