package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexis/internal/words"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 2)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// StageColor returns the color used for a learning-path stage.
func StageColor(s words.Stage) color.Color {
	switch s {
	case words.StageUnseen:
		return TextDim
	case words.StagePreviewed:
		return Accent
	case words.StageQuizPassed:
		return Secondary
	case words.StageDeepLearned:
		return Success
	default:
		return Text
	}
}

// ReviewColor returns the color used for a review status.
func ReviewColor(s words.ReviewStatus) color.Color {
	switch s {
	case words.ReviewOverdue:
		return Error
	case words.ReviewDue:
		return Accent
	case words.ReviewNotDue:
		return Success
	default:
		return TextDim
	}
}
