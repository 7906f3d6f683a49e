package preprocess

import "github.com/baditaflorin/go_preprocess/internal/core/domain"

// Step identifies one cleaning operation.
type Step = domain.Step

// Result holds the outcome of Pipeline.Clean.
type Result = domain.Result

// Available steps.
const (
	StepLowerCase   = domain.StepLowerCase
	StepHashtags    = domain.StepHashtags
	StepPunctuation = domain.StepPunctuation
	StepMentions    = domain.StepMentions
	StepStopWords   = domain.StepStopWords
)

// Errors returned by New.
var (
	ErrUnknownStep   = domain.ErrUnknownStep
	ErrNoSteps       = domain.ErrNoSteps
	ErrDuplicateStep = domain.ErrDuplicateStep
	ErrStepOrder     = domain.ErrStepOrder
)

// DefaultSteps returns hashtags, mentions, punctuation, lower, stopwords.
func DefaultSteps() []Step {
	return domain.DefaultSteps()
}

// ParseSteps resolves step names such as "hashtags" or "lower".
func ParseSteps(names []string) ([]Step, error) {
	return domain.ParseSteps(names)
}
