package preprocess

import (
	"context"
	"fmt"

	"github.com/baditaflorin/go_preprocess/internal/adapters/logger"
	"github.com/baditaflorin/go_preprocess/internal/adapters/normalizer"
	"github.com/baditaflorin/go_preprocess/internal/core/domain"
	"github.com/baditaflorin/go_preprocess/internal/ports"
	"github.com/baditaflorin/l"
)

// Pipeline runs a fixed sequence of cleaning steps over posts.
// It is safe for concurrent use.
type Pipeline struct {
	steps       []domain.Step
	normalizers []*normalizer.StepNormalizer
	logger      ports.Logger
}

// Option defines a functional option for configuring a Pipeline.
type Option func(*pipelineConfig)

type pipelineConfig struct {
	Steps       []domain.Step
	StepNames   []string
	Logger      ports.Logger
	StrictOrder bool
}

// Validate checks the configured steps. With StrictOrder, scheduling
// punctuation removal before hashtag or mention removal is an error.
func (c *pipelineConfig) Validate() error {
	if err := domain.ValidateSteps(c.Steps); err != nil {
		return err
	}
	if c.StrictOrder {
		return domain.CheckOrder(c.Steps)
	}
	return nil
}

// WithSteps sets the steps to run, in order.
func WithSteps(steps ...Step) Option {
	return func(cfg *pipelineConfig) {
		cfg.Steps = append([]domain.Step(nil), steps...)
		cfg.StepNames = nil
	}
}

// WithStepNames sets the steps to run by name, in order.
func WithStepNames(names ...string) Option {
	return func(cfg *pipelineConfig) {
		cfg.StepNames = make([]string, len(names))
		copy(cfg.StepNames, names)
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *pipelineConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortsLogger sets a logger implementing the module's logging interface.
func WithPortsLogger(lg ports.Logger) Option {
	return func(cfg *pipelineConfig) {
		cfg.Logger = lg
	}
}

// WithoutLogging disables logging.
func WithoutLogging() Option {
	return func(cfg *pipelineConfig) {
		cfg.Logger = logger.NewNopLogger()
	}
}

// WithStrictOrder makes New reject step orders that strip the '#' or '@'
// sigil before hashtags or mentions are removed.
func WithStrictOrder(strict bool) Option {
	return func(cfg *pipelineConfig) {
		cfg.StrictOrder = strict
	}
}

// New creates a Pipeline. Without WithSteps it runs DefaultSteps.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*Pipeline, error) {
	cfg := &pipelineConfig{
		Steps: domain.DefaultSteps(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.StepNames != nil {
		steps, err := domain.ParseSteps(cfg.StepNames)
		if err != nil {
			return nil, err
		}
		cfg.Steps = steps
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline: %w", err)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = createDefaultLogger()
		if err != nil {
			return nil, err
		}
	}

	if err := domain.CheckOrder(cfg.Steps); err != nil {
		cfg.Logger.Warn("Step order strips sigils before matching", "error", err, "steps", stepNames(cfg.Steps))
	}

	p := &Pipeline{
		steps:       cfg.Steps,
		normalizers: make([]*normalizer.StepNormalizer, 0, len(cfg.Steps)),
		logger:      cfg.Logger,
	}
	for _, s := range cfg.Steps {
		n, err := normalizer.ForStep(s)
		if err != nil {
			return nil, err
		}
		p.normalizers = append(p.normalizers, n)
	}
	return p, nil
}

// Steps returns a copy of the configured steps.
func (p *Pipeline) Steps() []Step {
	return append([]domain.Step(nil), p.steps...)
}

// Clean runs every step over text. Cancellation is checked between steps;
// an interrupted run returns the text cleaned so far with Complete unset.
func (p *Pipeline) Clean(ctx context.Context, text string) Result {
	p.logger.Debug("Starting text cleaning", "text", text, "steps", stepNames(p.steps))

	details := make(map[string]interface{}, len(p.normalizers))
	result := Result{Original: text, Details: details}

	current := text
	for _, n := range p.normalizers {
		select {
		case <-ctx.Done():
			p.logger.Error("Cleaning cancelled", "error", ctx.Err(), "step", n.Step().String())
			details["error"] = "cleaning cancelled"
			result.Text = current
			return result
		default:
		}

		before := len(current)
		current = n.Normalize(current)
		details[n.Step().String()] = stepDetails(n.Step(), before, len(current))
		result.Steps = append(result.Steps, n.Step())

		p.logger.Debug("Applied step", "step", n.Step().String(), "text", current)
	}

	result.Text = current
	result.Complete = true
	return result
}

// Close releases the pipeline's logger.
func (p *Pipeline) Close() error {
	return p.logger.Close()
}

// stepDetails reports removed_bytes for removal steps. Lowercasing can
// change the byte length in either direction, so it reports a signed
// byte_delta instead.
func stepDetails(step domain.Step, before, after int) map[string]interface{} {
	if step == domain.StepLowerCase {
		return map[string]interface{}{"byte_delta": after - before}
	}
	return map[string]interface{}{"removed_bytes": before - after}
}

func stepNames(steps []domain.Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.String()
	}
	return names
}
