package smooth

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type config struct {
	logger   logrus.FieldLogger
	designer Designer
	runID    func() uuid.UUID
}

// Option configures a Runner.
type Option func(*config)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithDesigner replaces the filter designer. The default is
// ZeroPhaseDesigner.
func WithDesigner(d Designer) Option {
	return func(cfg *config) {
		if d != nil {
			cfg.designer = d
		}
	}
}

// WithRunID sets the generator used to tag runs. The default is
// uuid.New.
func WithRunID(gen func() uuid.UUID) Option {
	return func(cfg *config) {
		if gen != nil {
			cfg.runID = gen
		}
	}
}

func applyOptions(opts []Option) config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	cfg := config{
		logger:   discard,
		designer: ZeroPhaseDesigner,
		runID:    uuid.New,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
