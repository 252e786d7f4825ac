package score

// Default tier boundaries. A score equal to a boundary belongs to the higher
// tier: exactly 0.8 is Success, exactly 0.6 is Close.
const (
	DefaultSuccessThreshold = 0.8
	DefaultCloseThreshold   = 0.6
)

// Tier is the discrete practice outcome derived from an accuracy score.
type Tier int

const (
	// TierSuccess means the word was pronounced well enough to move on.
	TierSuccess Tier = iota

	// TierClose means the word was understandable but worth one more try.
	TierClose

	// TierRetry means the attempt missed and should be repeated.
	TierRetry
)

// String returns the lowercase tier name used in logs and API responses.
func (t Tier) String() string {
	switch t {
	case TierSuccess:
		return "success"
	case TierClose:
		return "close"
	case TierRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// Feedback is the user-facing copy for a scoring outcome. It is a pure
// lookup over the tier thresholds; rendering is the UI's concern.
type Feedback struct {
	Title       string
	Description string
}

// Option is a functional option for configuring a [Classifier].
type Option func(*Classifier)

// WithSuccessThreshold sets the minimum score for [TierSuccess].
// Default: 0.8.
func WithSuccessThreshold(threshold float64) Option {
	return func(c *Classifier) {
		c.successThreshold = threshold
	}
}

// WithCloseThreshold sets the minimum score for [TierClose].
// Default: 0.6.
func WithCloseThreshold(threshold float64) Option {
	return func(c *Classifier) {
		c.closeThreshold = threshold
	}
}

// Classifier maps accuracy scores to tiers and feedback copy. It is
// read-only after construction and safe for concurrent use.
type Classifier struct {
	successThreshold float64
	closeThreshold   float64
}

// NewClassifier returns a [Classifier] configured with the supplied options.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		successThreshold: DefaultSuccessThreshold,
		closeThreshold:   DefaultCloseThreshold,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Classify maps an accuracy score in [0, 1] to its tier. Boundaries are
// inclusive upward: score >= success threshold is Success, score >= close
// threshold is Close, anything below is Retry.
func (c *Classifier) Classify(score float64) Tier {
	switch {
	case score >= c.successThreshold:
		return TierSuccess
	case score >= c.closeThreshold:
		return TierClose
	default:
		return TierRetry
	}
}

// Feedback returns the user-facing copy for a score. No side effects, no
// external calls — the same score always yields the same copy.
func (c *Classifier) Feedback(score float64) Feedback {
	switch c.Classify(score) {
	case TierSuccess:
		return Feedback{
			Title:       "Great pronunciation!",
			Description: "You nailed that one. On to the next word.",
		}
	case TierClose:
		return Feedback{
			Title:       "Almost there!",
			Description: "Close enough to be understood — one more try to make it shine.",
		}
	default:
		return Feedback{
			Title:       "Keep practicing",
			Description: "Listen to the word once more and give it another go.",
		}
	}
}

// defaultClassifier backs the package-level helpers.
var defaultClassifier = NewClassifier()

// Classify maps a score to a tier using the default thresholds.
func Classify(score float64) Tier {
	return defaultClassifier.Classify(score)
}

// FeedbackFor returns feedback copy for a score using the default thresholds.
func FeedbackFor(score float64) Feedback {
	return defaultClassifier.Feedback(score)
}
