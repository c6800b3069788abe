// Package report renders engine results for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/feynman"
	"github.com/abhisek/lexis/internal/learningpath"
	"github.com/abhisek/lexis/internal/predict"
	"github.com/abhisek/lexis/internal/quiz"
	"github.com/abhisek/lexis/internal/spacedrep"
	"github.com/abhisek/lexis/internal/ui/components"
	"github.com/abhisek/lexis/internal/ui/theme"
	"github.com/abhisek/lexis/internal/words"
)

const (
	barWidth   = 24
	labelWidth = 14
)

// Stats renders stage counts, the derived counters and the next step.
func Stats(st learningpath.Stats, rec learningpath.Recommendation) string {
	if st.Total == 0 {
		return theme.Hint.Render("No words yet. Import a deck with `lexis import <file>`.") + "\n"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%d words", st.Total)))
	b.WriteString("\n\n")

	for _, stage := range words.AllStages() {
		bar := components.NewProgressBar(stage.DisplayName(), fraction(st.Count(stage), st.Total), barWidth)
		bar.LabelWidth = labelWidth
		bar.Fill = theme.StageColor(stage)
		fmt.Fprintf(&b, "%s %4d\n", bar.View(), st.Count(stage))
	}
	b.WriteString("\n")

	rows := [][2]string{
		{"Ready for quiz", fmt.Sprint(st.ReadyForQuiz)},
		{"Needs deep", fmt.Sprint(st.NeedsDeepLearn)},
		{"Struggling", fmt.Sprint(st.Struggling)},
		{"Mastered", fmt.Sprint(st.Mastered)},
		{"Progress", fmt.Sprintf("%.1f%%", st.LearningPercentage)},
	}
	for _, r := range rows {
		b.WriteString(row(r[0], r[1]))
	}
	b.WriteString("\n")
	b.WriteString(Recommendation(rec))
	return b.String()
}

// Recommendation renders the single next step.
func Recommendation(rec learningpath.Recommendation) string {
	if rec.Kind == learningpath.RecommendAllCaughtUp {
		return theme.Correct.Render("All caught up!") + "\n"
	}
	return theme.Heading.Render("Next: "+recommendationTitle(rec.Kind)) + "  " + theme.Body.Render(rec.Reason) + "\n"
}

func recommendationTitle(k learningpath.RecommendationKind) string {
	switch k {
	case learningpath.RecommendPreview:
		return "preview"
	case learningpath.RecommendQuiz:
		return "quiz"
	case learningpath.RecommendDeepLearn:
		return "deep learn"
	default:
		return string(k)
	}
}

// Plan renders a daily session with its summary line.
func Plan(d learningpath.DailySession, sum learningpath.SessionSummary) string {
	if d.Empty() {
		return theme.Correct.Render("Nothing planned today. All caught up!") + "\n"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Today's session"))
	b.WriteString("  ")
	b.WriteString(theme.Label.Render(summaryLine(sum)))
	b.WriteString("\n")

	section := func(title string, ws []*words.Word) {
		if len(ws) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(theme.Heading.Render(title))
		b.WriteString("\n")
		for _, w := range ws {
			b.WriteString("  ")
			b.WriteString(wordLine(w))
			b.WriteString("\n")
		}
	}
	section("Preview", d.PreviewWords)
	section("Quiz", d.QuizWords)
	if d.DeepLearnWord != nil {
		section("Deep learn", []*words.Word{d.DeepLearnWord})
	}
	return b.String()
}

func summaryLine(sum learningpath.SessionSummary) string {
	parts := []string{
		fmt.Sprintf("%d preview", sum.PreviewCount),
		fmt.Sprintf("%d quiz", sum.QuizCount),
	}
	if sum.HasDeepLearn {
		parts = append(parts, "1 deep learn")
	}
	return fmt.Sprintf("%s (%d total)", strings.Join(parts, ", "), sum.Total)
}

func wordLine(w *words.Word) string {
	term := lipgloss.NewStyle().Foreground(theme.StageColor(w.Stage)).Bold(true).Render(w.Term)
	if w.PartOfSpeech == "" {
		return term
	}
	return term + " " + theme.Hint.Render(w.PartOfSpeech)
}

// Card renders a word face for the preview swipe deck.
func Card(w *words.Word, now time.Time) string {
	var b strings.Builder
	b.WriteString(wordLine(w))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(w.Definition))
	if w.Example != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("“" + w.Example + "”"))
	}
	if w.HasSynonyms() {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("Synonyms: " + strings.Join(w.Synonyms, ", ")))
	}
	if w.Mnemonic != "" {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("Mnemonic: " + w.Mnemonic))
	}
	if w.Root != "" {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render(fmt.Sprintf("Root: %s (%s)", w.Root, w.RootMeaning)))
	}
	status := w.ReviewStatus(now)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ReviewColor(status)).Render(reviewLabel(w, status, now)))
	return theme.Card.Render(b.String()) + "\n"
}

func reviewLabel(w *words.Word, s words.ReviewStatus, now time.Time) string {
	switch s {
	case words.ReviewOverdue:
		return fmt.Sprintf("Overdue by %.0f days", w.OverdueDays(now))
	case words.ReviewDue:
		return "Due today"
	case words.ReviewNotDue:
		return fmt.Sprintf("Next review in %d days", w.DaysUntilReview(now))
	default:
		return "Not scheduled yet"
	}
}

// Question renders a quiz item. Multiple choice options are numbered from 1.
func Question(q *quiz.Question) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render(q.Type.DisplayName()))
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Render(q.Prompt))
	b.WriteString("\n")
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, opt)
	}
	if q.Hint != "" {
		b.WriteString(theme.Hint.Render("Hint: " + q.Hint))
		b.WriteString("\n")
	}
	return b.String()
}

// Result renders the outcome of an answer.
func Result(r quiz.AnswerResult, q *quiz.Question) string {
	if r.IsCorrect {
		msg := "Correct!"
		if r.Match == quiz.MatchTypo || r.Match == quiz.MatchSubstring {
			msg = fmt.Sprintf("Correct! The answer is %q.", q.Answer)
		}
		return theme.Correct.Render(msg) + "\n"
	}
	return theme.Incorrect.Render(fmt.Sprintf("Not quite. The answer is %q.", q.Answer)) + "\n"
}

// Transition renders the mastery status change caused by rev, with a
// celebration when the word just became mastered. Empty when nothing changed.
func Transition(rev spacedrep.Review, term string) string {
	t := rev.Transition(term)
	if t == nil {
		return ""
	}
	line := fmt.Sprintf("%s: %s → %s", t.Term, t.From, t.To)
	if rev.Mastered() {
		return theme.Correct.Render(line+"  Mastered!") + "\n"
	}
	return theme.Label.Render(line) + "\n"
}

// Grade renders a Feynman grade as filled and empty stars.
func Grade(g feynman.Grade) string {
	c := words.ClampInt(g.Confidence, 0, words.MaxFeynmanConfidence)
	stars := strings.Repeat("★", c) + strings.Repeat("☆", words.MaxFeynmanConfidence-c)
	var b strings.Builder
	b.WriteString(theme.Warning.Render(stars))
	b.WriteString("  ")
	b.WriteString(theme.Label.Render(fmt.Sprintf("%d/%d (%s)", c, words.MaxFeynmanConfidence, g.Source)))
	b.WriteString("\n")
	if g.Feedback != "" {
		b.WriteString(theme.Body.Render(g.Feedback))
		b.WriteString("\n")
	}
	return b.String()
}

// Prediction renders the score estimate and readiness.
func Prediction(p predict.Prediction) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Predicted score: %d", p.Score)))
	b.WriteString("  ")
	b.WriteString(theme.Label.Render(fmt.Sprintf("target %d", p.TargetScore)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Readiness", p.Readiness, barWidth)
	bar.LabelWidth = labelWidth
	if p.Readiness >= 1 {
		bar.Fill = theme.Success
	}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(row("Mastered", fmt.Sprintf("%d / %d", p.Mastered, p.Total)))
	b.WriteString(row("Deep learned", fmt.Sprint(p.DeepLearned)))
	b.WriteString(row("Accuracy", fmt.Sprintf("%.0f%%", p.Accuracy*100)))
	speed := "n/a"
	if p.AvgResponseSeconds > 0 {
		speed = fmt.Sprintf("%.1fs", p.AvgResponseSeconds)
	}
	b.WriteString(row("Avg response", speed))
	return b.String()
}

// Forecast renders review counts per day starting today.
func Forecast(counts []int, now time.Time) string {
	if len(counts) == 0 {
		return ""
	}
	peak := max(1, lo.Max(counts))

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Upcoming reviews"))
	b.WriteString("\n")
	for i, n := range counts {
		day := "Today"
		if i > 0 {
			day = now.AddDate(0, 0, i).Format("Mon Jan 02")
		}
		cells := int(float64(barWidth)*float64(n)/float64(peak) + 0.5)
		fmt.Fprintf(&b, "%s %s %d\n",
			theme.Label.Width(labelWidth).Render(day),
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("▇", cells)),
			n)
	}
	return b.String()
}

func row(label, value string) string {
	return theme.Label.Width(labelWidth).Render(label) + "  " + theme.Body.Render(value) + "\n"
}

func fraction(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
