package spacedrep

import (
	"testing"
	"time"

	"github.com/abhisek/lexis/internal/words"
)

func TestReview_TransitionNilWhenUnchanged(t *testing.T) {
	r := Review{Before: words.StatusLearning, After: words.StatusLearning}
	if r.Transition("x") != nil {
		t.Error("expected nil transition when status unchanged")
	}
	if r.Mastered() {
		t.Error("expected Mastered() false")
	}
}

func TestReview_MasteredOnlyOnEntry(t *testing.T) {
	r := Review{Before: words.StatusMastered, After: words.StatusMastered}
	if r.Mastered() {
		t.Error("already mastered word should not report a new mastery")
	}
}

func TestForecast(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 3, 13, 1, 0, 0, 0, time.UTC)
	pool := []*words.Word{
		{NextReviewAt: now.AddDate(0, 0, -4)},   // overdue, counted today
		{NextReviewAt: now.Add(10 * time.Hour)}, // later today
		{NextReviewAt: now.Add(20 * time.Hour)}, // tomorrow 05:00
		{NextReviewAt: day3},
		{NextReviewAt: now.AddDate(0, 0, 30)}, // beyond horizon
		{},                                    // unscheduled
		nil,
	}

	got := Forecast(pool, now, 4)
	want := []int{2, 1, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("Forecast len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Forecast[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if Forecast(pool, now, 0) != nil {
		t.Error("expected nil forecast for zero days")
	}
}
