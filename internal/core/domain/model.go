package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned while building a cleaning pipeline.
var (
	ErrUnknownStep   = errors.New("unknown step")
	ErrNoSteps       = errors.New("no steps configured")
	ErrDuplicateStep = errors.New("duplicate step")
	ErrStepOrder     = errors.New("punctuation removal must run after hashtag and mention removal")
)

// Step identifies one text cleaning operation.
type Step int

const (
	StepLowerCase Step = iota
	StepHashtags
	StepPunctuation
	StepMentions
	StepStopWords
)

var stepNames = [...]string{
	StepLowerCase:   "lower",
	StepHashtags:    "hashtags",
	StepPunctuation: "punctuation",
	StepMentions:    "mentions",
	StepStopWords:   "stopwords",
}

// String returns the canonical name of the step.
func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// Valid reports whether s is one of the known steps.
func (s Step) Valid() bool {
	return s >= StepLowerCase && s <= StepStopWords
}

// MarshalText implements encoding.TextMarshaler.
func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStep, int(s))
	}
	return []byte(stepNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Step) UnmarshalText(text []byte) error {
	step, err := ParseStep(string(text))
	if err != nil {
		return err
	}
	*s = step
	return nil
}

// ParseStep resolves a step name. Matching ignores case and surrounding space.
func ParseStep(name string) (Step, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range stepNames {
		if n == key {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// ParseSteps resolves a list of step names, preserving order.
func ParseSteps(names []string) ([]Step, error) {
	steps := make([]Step, 0, len(names))
	for _, name := range names {
		step, err := ParseStep(name)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// AllSteps returns every known step in declaration order.
func AllSteps() []Step {
	return []Step{StepLowerCase, StepHashtags, StepPunctuation, StepMentions, StepStopWords}
}

// DefaultSteps returns the recommended order: sigil tokens go before
// punctuation so that '#' and '@' are still present when they are matched.
func DefaultSteps() []Step {
	return []Step{StepHashtags, StepMentions, StepPunctuation, StepLowerCase, StepStopWords}
}

// ValidateSteps checks that steps is non-empty, known and free of duplicates.
func ValidateSteps(steps []Step) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}
	seen := make(map[Step]bool, len(steps))
	for _, s := range steps {
		if !s.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownStep, int(s))
		}
		if seen[s] {
			return fmt.Errorf("%w: %s", ErrDuplicateStep, s)
		}
		seen[s] = true
	}
	return nil
}

// CheckOrder returns ErrStepOrder when punctuation removal is scheduled
// before hashtag or mention removal.
func CheckOrder(steps []Step) error {
	punct := -1
	for i, s := range steps {
		switch s {
		case StepPunctuation:
			if punct < 0 {
				punct = i
			}
		case StepHashtags, StepMentions:
			if punct >= 0 {
				return fmt.Errorf("%w: %s scheduled after %s", ErrStepOrder, s, StepPunctuation)
			}
		}
	}
	return nil
}

// Result holds the outcome of running a cleaning pipeline over one text.
type Result struct {
	Original string
	Text     string
	Steps    []Step
	// Complete is false when the run was interrupted before every step ran.
	Complete bool
	Details  map[string]interface{}
}
