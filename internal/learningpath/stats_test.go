package learningpath

import (
	"math"
	"testing"

	"github.com/abhisek/lexis/internal/words"
)

func wordAt(id string, stage words.Stage) *words.Word {
	w := words.New(id, id, "definition of "+id)
	w.Stage = stage
	return w
}

func TestStats_EmptyPool(t *testing.T) {
	e := newTestEngine()
	st := e.Stats(nil)
	if st != (Stats{}) {
		t.Errorf("Stats(nil) = %+v, want zero", st)
	}
	if rec := e.Recommend(nil); rec.Kind != RecommendAllCaughtUp {
		t.Errorf("Recommend(nil).Kind = %q, want all_caught_up", rec.Kind)
	}
}

func TestStats_Counts(t *testing.T) {
	e := newTestEngine()

	dueQuizPassed := wordAt("d1", words.StageQuizPassed)
	dueQuizPassed.FeynmanConfidence = 4
	dueQuizPassed.NextReviewAt = fixedNow.AddDate(0, 0, -1)

	notDueQuizPassed := wordAt("d2", words.StageQuizPassed)
	notDueQuizPassed.FeynmanConfidence = 1
	notDueQuizPassed.NextReviewAt = fixedNow.AddDate(0, 0, 2)

	struggling := wordAt("d3", words.StageQuizPassed)
	struggling.FeynmanConfidence = 5
	struggling.Struggling = true
	struggling.NextReviewAt = fixedNow.AddDate(0, 0, 2)

	mastered := wordAt("d4", words.StageDeepLearned)
	mastered.Repetitions = 6
	mastered.TimesReviewed = 6
	mastered.NextReviewAt = fixedNow.AddDate(0, 0, 30)

	pool := []*words.Word{
		wordAt("u1", words.StageUnseen),
		wordAt("u2", "bogus"),
		wordAt("p1", words.StagePreviewed),
		dueQuizPassed,
		notDueQuizPassed,
		struggling,
		mastered,
		nil,
	}

	st := e.Stats(pool)

	checks := []struct {
		name      string
		got, want int
	}{
		{"Unseen", st.Unseen, 2},
		{"Previewed", st.Previewed, 1},
		{"QuizPassed", st.QuizPassed, 3},
		{"DeepLearned", st.DeepLearned, 1},
		{"ReadyForQuiz", st.ReadyForQuiz, 2},
		{"NeedsDeepLearn", st.NeedsDeepLearn, 2},
		{"Struggling", st.Struggling, 1},
		{"Mastered", st.Mastered, 1},
		{"Total", st.Total, 7},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	// (0 + 0 + 0.33 + 3*0.66 + 1.0) / 7 * 100 = 47.3
	if math.Abs(st.LearningPercentage-47.3) > 1e-9 {
		t.Errorf("LearningPercentage = %v, want 47.3", st.LearningPercentage)
	}
	if st.Count(words.StageQuizPassed) != 3 {
		t.Errorf("Count(quiz_passed) = %d, want 3", st.Count(words.StageQuizPassed))
	}
}

func TestStats_LearningPercentageBounds(t *testing.T) {
	e := newTestEngine()
	all := []*words.Word{wordAt("a", words.StageDeepLearned), wordAt("b", words.StageDeepLearned)}
	if got := e.Stats(all).LearningPercentage; got != 100 {
		t.Errorf("all deep learned: LearningPercentage = %v, want 100", got)
	}
	none := []*words.Word{wordAt("a", words.StageUnseen)}
	if got := e.Stats(none).LearningPercentage; got != 0 {
		t.Errorf("all unseen: LearningPercentage = %v, want 0", got)
	}
}

func TestRecommend_SingleUnseen(t *testing.T) {
	e := newTestEngine()
	rec := e.Recommend([]*words.Word{wordAt("w", words.StageUnseen)})
	if rec.Kind != RecommendPreview || rec.Count != 1 {
		t.Errorf("Recommend = %+v, want preview(1)", rec)
	}
	if rec.Reason != "1 new word waiting to be previewed" {
		t.Errorf("Reason = %q", rec.Reason)
	}
}

func TestRecommendFromStats_Priority(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		kind  RecommendationKind
		count int
	}{
		{"zero", Stats{}, RecommendAllCaughtUp, 0},
		{"unseen wins", Stats{Unseen: 2, ReadyForQuiz: 5, NeedsDeepLearn: 3}, RecommendPreview, 2},
		{"quiz over deep", Stats{ReadyForQuiz: 5, NeedsDeepLearn: 3}, RecommendQuiz, 5},
		{"deep only", Stats{NeedsDeepLearn: 3, DeepLearned: 10}, RecommendDeepLearn, 3},
		{"all learned", Stats{DeepLearned: 10, Total: 10}, RecommendAllCaughtUp, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := RecommendFromStats(tt.stats)
			if rec.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", rec.Kind, tt.kind)
			}
			if rec.Count != tt.count {
				t.Errorf("Count = %d, want %d", rec.Count, tt.count)
			}
			if (rec.Kind == RecommendAllCaughtUp) != (rec.Reason == "") {
				t.Errorf("Reason = %q for kind %q", rec.Reason, rec.Kind)
			}
		})
	}
}

func TestRecommendFromStats_Total(t *testing.T) {
	for unseen := 0; unseen < 3; unseen++ {
		for ready := 0; ready < 3; ready++ {
			for deep := 0; deep < 3; deep++ {
				rec := RecommendFromStats(Stats{Unseen: unseen, ReadyForQuiz: ready, NeedsDeepLearn: deep})
				var want RecommendationKind
				switch {
				case unseen > 0:
					want = RecommendPreview
				case ready > 0:
					want = RecommendQuiz
				case deep > 0:
					want = RecommendDeepLearn
				default:
					want = RecommendAllCaughtUp
				}
				if rec.Kind != want {
					t.Errorf("(%d,%d,%d): Kind = %q, want %q", unseen, ready, deep, rec.Kind, want)
				}
			}
		}
	}
}
