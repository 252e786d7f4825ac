package practice_test

import (
	"testing"

	"github.com/solfege-app/solfege/internal/practice"
	"github.com/solfege-app/solfege/pkg/score"
)

func TestNewSession_WordAlignment(t *testing.T) {
	t.Parallel()

	s := practice.NewSession("s1", "suspirando por las", "soos-peerahn-doh pohr lahs", nil)

	words := s.Words()
	if len(words) != 3 {
		t.Fatalf("word count = %d, want 3", len(words))
	}
	if words[0].Word != "suspirando" || words[0].Phonetic != "soos-peerahn-doh" {
		t.Errorf("word 0 = %q/%q, want suspirando/soos-peerahn-doh", words[0].Word, words[0].Phonetic)
	}
	for i, w := range words {
		if w.Status != practice.StatusPending {
			t.Errorf("word %d: status = %v, want pending", i, w.Status)
		}
		if w.Attempts != 0 || w.BestScore != 0 {
			t.Errorf("word %d: attempts=%d bestScore=%f, want zero values", i, w.Attempts, w.BestScore)
		}
	}
}

func TestNewSession_SentinelGuide(t *testing.T) {
	t.Parallel()

	// A sentinel guide yields no phonetic tokens but the lyric words remain
	// practicable.
	s := practice.NewSession("s1", "la vida", "—", nil)

	words := s.Words()
	if len(words) != 2 {
		t.Fatalf("word count = %d, want 2", len(words))
	}
	if words[0].Phonetic != "" {
		t.Errorf("Phonetic = %q, want empty for sentinel guide", words[0].Phonetic)
	}
}

func TestNewSession_SurplusGuideTokens(t *testing.T) {
	t.Parallel()

	s := practice.NewSession("s1", "oh", "oh oh-oh-oh", nil)

	words := s.Words()
	if len(words) != 2 {
		t.Fatalf("word count = %d, want 2", len(words))
	}
	// The surplus token becomes its own practicable word.
	if words[1].Word != "oh-oh-oh" {
		t.Errorf("word 1 = %q, want the surplus guide token", words[1].Word)
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	cases := map[practice.Status]string{
		practice.StatusPending: "pending",
		practice.StatusSuccess: "success",
		practice.StatusRetry:   "retry",
		practice.StatusSkipped: "skipped",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", status, got, want)
		}
	}
}

func TestSession_CustomClassifier(t *testing.T) {
	t.Parallel()

	// With a success threshold of 0.5, a mediocre attempt still succeeds.
	lenient := score.NewClassifier(score.WithSuccessThreshold(0.5), score.WithCloseThreshold(0.3))
	m := practice.NewManager(lenient, nil)
	s := m.Start("hola", "oh-lah")

	att, err := m.RecordAttempt(s.ID, 0, "hol")
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if att.Tier != score.TierSuccess {
		t.Errorf("tier = %v with lenient thresholds, want TierSuccess", att.Tier)
	}
}
