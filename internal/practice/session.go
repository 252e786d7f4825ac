// Package practice tracks per-word pronunciation practice state for a lyric
// line. A Session is created when the learner opens a line for practice, is
// mutated by each scoring event, and is discarded when the line is done —
// nothing here persists.
package practice

import (
	"fmt"
	"time"

	"github.com/solfege-app/solfege/pkg/score"
)

// Status is the practice lifecycle state of a single word.
type Status int

const (
	// StatusPending means the word has not been attempted yet.
	StatusPending Status = iota

	// StatusSuccess means the best attempt reached the success tier.
	StatusSuccess

	// StatusRetry means the word was attempted but wants another try.
	StatusRetry

	// StatusSkipped means the learner chose to move past the word.
	StatusSkipped
)

// String returns the lowercase status name used in API responses.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusRetry:
		return "retry"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// WordState is the practice state of one word in the line.
type WordState struct {
	// Word is the lyric word the learner is asked to pronounce.
	Word string

	// Phonetic is the matching phonetic-guide token, for display. Empty
	// when the guide has fewer tokens than the line has words.
	Phonetic string

	// Status is the current lifecycle state.
	Status Status

	// Attempts counts scoring events for this word.
	Attempts uint32

	// BestScore is the highest accuracy reached across attempts.
	BestScore float64
}

// Attempt is the outcome of one scoring event, returned so callers can show
// immediate feedback without re-deriving it.
type Attempt struct {
	Accuracy float64
	Tier     score.Tier
	Feedback score.Feedback
}

// Session is the in-flight practice state for one lyric line. All methods
// are safe for concurrent use via the owning [Manager]'s lock; a Session
// obtained from a Manager must only be mutated through the Manager.
type Session struct {
	// ID uniquely identifies the session while it is alive.
	ID string

	// Text is the lyric line being practiced.
	Text string

	// StartedAt is when the session was created.
	StartedAt time.Time

	words      []WordState
	classifier *score.Classifier
}

// NewSession builds a session from a lyric line and its phonetic guide. One
// word state is created per word; phonetic tokens align positionally and
// surplus guide tokens create states of their own so the learner can still
// practice vocalized syllables that have no written word.
func NewSession(id, text, phoneticGuide string, classifier *score.Classifier) *Session {
	if classifier == nil {
		classifier = score.NewClassifier()
	}

	lyricWords := score.PhoneticWords(text)
	guideWords := score.PhoneticWords(phoneticGuide)

	n := len(lyricWords)
	if len(guideWords) > n {
		n = len(guideWords)
	}

	words := make([]WordState, n)
	for i := range words {
		var w, p string
		if i < len(lyricWords) {
			w = lyricWords[i]
		}
		if i < len(guideWords) {
			p = guideWords[i]
		}
		if w == "" {
			w = p
		}
		words[i] = WordState{Word: w, Phonetic: p, Status: StatusPending}
	}

	return &Session{
		ID:         id,
		Text:       text,
		StartedAt:  time.Now(),
		words:      words,
		classifier: classifier,
	}
}

// Words returns a copy of the per-word states.
func (s *Session) Words() []WordState {
	out := make([]WordState, len(s.words))
	copy(out, s.words)
	return out
}

// recordAttempt scores spoken against the word at index and folds the result
// into the word's state. A Close outcome maps to StatusRetry — the word was
// understandable, but the session wants another attempt before moving on.
func (s *Session) recordAttempt(index int, spoken string) (Attempt, error) {
	if index < 0 || index >= len(s.words) {
		return Attempt{}, fmt.Errorf("practice: word index %d out of range [0,%d)", index, len(s.words))
	}

	w := &s.words[index]
	acc := score.Accuracy(w.Word, spoken)
	tier := s.classifier.Classify(acc)

	w.Attempts++
	if acc > w.BestScore {
		w.BestScore = acc
	}
	switch tier {
	case score.TierSuccess:
		w.Status = StatusSuccess
	default:
		if w.Status != StatusSuccess {
			w.Status = StatusRetry
		}
	}

	return Attempt{
		Accuracy: acc,
		Tier:     tier,
		Feedback: s.classifier.Feedback(acc),
	}, nil
}

// skip marks the word at index as skipped unless it already succeeded.
func (s *Session) skip(index int) error {
	if index < 0 || index >= len(s.words) {
		return fmt.Errorf("practice: word index %d out of range [0,%d)", index, len(s.words))
	}
	if s.words[index].Status != StatusSuccess {
		s.words[index].Status = StatusSkipped
	}
	return nil
}

// Summary aggregates the session for display.
type Summary struct {
	Total     int
	Succeeded int
	Retrying  int
	Skipped   int
	Pending   int
}

// summarize tallies word states.
func (s *Session) summarize() Summary {
	sum := Summary{Total: len(s.words)}
	for _, w := range s.words {
		switch w.Status {
		case StatusSuccess:
			sum.Succeeded++
		case StatusRetry:
			sum.Retrying++
		case StatusSkipped:
			sum.Skipped++
		default:
			sum.Pending++
		}
	}
	return sum
}
