package normalizer

import (
	"fmt"

	"github.com/baditaflorin/go_preprocess/internal/core/clean"
	"github.com/baditaflorin/go_preprocess/internal/core/domain"
	"github.com/baditaflorin/go_preprocess/internal/ports"
)

// StepNormalizer adapts one cleaning operation to the ports.Normalizer interface.
type StepNormalizer struct {
	step domain.Step
	fn   func(string) string
}

var stepFuncs = map[domain.Step]func(string) string{
	domain.StepLowerCase:   clean.LowerCase,
	domain.StepHashtags:    clean.RemoveHashtags,
	domain.StepPunctuation: clean.RemovePunctuation,
	domain.StepMentions:    clean.RemoveMentions,
	domain.StepStopWords:   clean.RemoveStopWords,
}

// ForStep returns the normalizer that performs step.
func ForStep(step domain.Step) (*StepNormalizer, error) {
	fn, ok := stepFuncs[step]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownStep, int(step))
	}
	return &StepNormalizer{step: step, fn: fn}, nil
}

// Normalize applies the step to text.
func (n *StepNormalizer) Normalize(text string) string {
	return n.fn(text)
}

// Step returns the operation this normalizer performs.
func (n *StepNormalizer) Step() domain.Step {
	return n.step
}

var _ ports.Normalizer = (*StepNormalizer)(nil)
