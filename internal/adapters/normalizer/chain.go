package normalizer

import (
	"github.com/baditaflorin/go_preprocess/internal/core/domain"
	"github.com/baditaflorin/go_preprocess/internal/ports"
)

// Chain applies a sequence of normalizers in order.
type Chain struct {
	steps       []domain.Step
	normalizers []ports.Normalizer
}

// NewChain builds a chain for the given steps after validating them.
func NewChain(steps ...domain.Step) (*Chain, error) {
	if err := domain.ValidateSteps(steps); err != nil {
		return nil, err
	}

	c := &Chain{
		steps:       append([]domain.Step(nil), steps...),
		normalizers: make([]ports.Normalizer, 0, len(steps)),
	}
	for _, s := range steps {
		n, err := ForStep(s)
		if err != nil {
			return nil, err
		}
		c.normalizers = append(c.normalizers, n)
	}
	return c, nil
}

// NewDefaultChain builds a chain using domain.DefaultSteps.
func NewDefaultChain() ports.Normalizer {
	c, err := NewChain(domain.DefaultSteps()...)
	if err != nil {
		// DefaultSteps is a fixed valid list.
		panic(err)
	}
	return c
}

// Normalize runs every normalizer of the chain over text.
func (c *Chain) Normalize(text string) string {
	for _, n := range c.normalizers {
		text = n.Normalize(text)
	}
	return text
}

// Steps returns a copy of the chained steps.
func (c *Chain) Steps() []domain.Step {
	return append([]domain.Step(nil), c.steps...)
}
