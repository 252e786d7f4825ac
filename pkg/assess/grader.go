package assess

import (
	"context"
	"fmt"
	"strings"

	"github.com/solfege-app/solfege/pkg/score"
)

// WordScore is the per-word outcome of a graded attempt. Words are aligned
// by position: the i-th reference word is compared against the i-th heard
// word, with missing words treated as empty utterances.
type WordScore struct {
	Expected string
	Heard    string
	Accuracy float64
	Tier     score.Tier
}

// Grade is the combined result of one assessment round trip.
type Grade struct {
	// Transcript is what the provider heard, verbatim.
	Transcript string

	// Accuracy is the whole-utterance similarity in [0, 1].
	Accuracy float64

	// Tier and Feedback derive from Accuracy.
	Tier     score.Tier
	Feedback score.Feedback

	// Words holds the positional per-word breakdown.
	Words []WordScore
}

// Grader runs a clip through an assessment [Provider] and converts the
// transcription into practice feedback via the score package. The zero
// Classifier means default thresholds. Safe for concurrent use.
type Grader struct {
	Provider   Provider
	Classifier *score.Classifier
}

// NewGrader returns a Grader over p with default tier thresholds.
func NewGrader(p Provider) *Grader {
	return &Grader{Provider: p, Classifier: score.NewClassifier()}
}

// Grade submits wav to the provider and scores the transcript against
// referenceText. Provider failures are returned as-is (wrapped); scoring
// itself cannot fail.
func (g *Grader) Grade(ctx context.Context, wav []byte, referenceText string) (Grade, error) {
	res, err := g.Provider.Assess(ctx, wav, referenceText)
	if err != nil {
		return Grade{}, fmt.Errorf("assess: provider: %w", err)
	}

	classifier := g.Classifier
	if classifier == nil {
		classifier = score.NewClassifier()
	}

	overall := score.Accuracy(referenceText, res.Transcript)

	expected := strings.Fields(referenceText)
	heard := strings.Fields(res.Transcript)
	words := make([]WordScore, len(expected))
	for i, w := range expected {
		var h string
		if i < len(heard) {
			h = heard[i]
		}
		acc := score.Accuracy(w, h)
		words[i] = WordScore{
			Expected: w,
			Heard:    h,
			Accuracy: acc,
			Tier:     classifier.Classify(acc),
		}
	}

	return Grade{
		Transcript: res.Transcript,
		Accuracy:   overall,
		Tier:       classifier.Classify(overall),
		Feedback:   classifier.Feedback(overall),
		Words:      words,
	}, nil
}
