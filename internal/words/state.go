package words

// Stage is a word's coarse position on the learning path.
// Stages only ever advance: unseen -> previewed -> quiz_passed -> deep_learned.
type Stage string

const (
	StageUnseen      Stage = "unseen"
	StagePreviewed   Stage = "previewed"
	StageQuizPassed  Stage = "quiz_passed"
	StageDeepLearned Stage = "deep_learned"
)

var stageRank = map[Stage]int{
	StageUnseen:      0,
	StagePreviewed:   1,
	StageQuizPassed:  2,
	StageDeepLearned: 3,
}

// AllStages returns every stage in path order.
func AllStages() []Stage {
	return []Stage{StageUnseen, StagePreviewed, StageQuizPassed, StageDeepLearned}
}

// Rank returns the stage's position on the path (0-3).
// Unknown stages rank as unseen.
func (s Stage) Rank() int {
	return stageRank[s]
}

// AtLeast reports whether s is the same as or beyond other.
func (s Stage) AtLeast(other Stage) bool {
	return s.Rank() >= other.Rank()
}

// Valid reports whether s is one of the four known stages.
func (s Stage) Valid() bool {
	_, ok := stageRank[s]
	return ok
}

// DisplayName returns a human-readable label for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageUnseen:
		return "Unseen"
	case StagePreviewed:
		return "Previewed"
	case StageQuizPassed:
		return "Quiz passed"
	case StageDeepLearned:
		return "Deep learned"
	default:
		return string(s)
	}
}

// MasteryStatus is the spaced-repetition classification derived from
// a word's repetition and review counters.
type MasteryStatus string

const (
	StatusNew      MasteryStatus = "new"
	StatusLearning MasteryStatus = "learning"
	StatusMastered MasteryStatus = "mastered"
)

// StatusTransition records a mastery status change caused by a review.
type StatusTransition struct {
	WordID string
	Term   string
	From   MasteryStatus
	To     MasteryStatus
}

// ReviewStatus describes where a word sits in its review cycle.
type ReviewStatus string

const (
	ReviewUnscheduled ReviewStatus = "unscheduled"
	ReviewNotDue      ReviewStatus = "not_due"
	ReviewDue         ReviewStatus = "due"
	ReviewOverdue     ReviewStatus = "overdue"
)
