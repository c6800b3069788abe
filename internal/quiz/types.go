package quiz

// QuestionType identifies how a word is quizzed.
type QuestionType string

const (
	// TypeDefinitionRecall shows the definition; the learner types the term.
	TypeDefinitionRecall QuestionType = "definition_recall"

	// TypeWordFromDefinition shows the definition; the learner picks the term.
	TypeWordFromDefinition QuestionType = "word_from_definition"

	// TypeDefinitionFromWord shows the term; the learner picks the definition.
	TypeDefinitionFromWord QuestionType = "definition_from_word"

	// TypeSentenceCompletion blanks the term out of its example sentence.
	TypeSentenceCompletion QuestionType = "sentence_completion"

	// TypeSynonymMatch asks for a synonym of the term.
	TypeSynonymMatch QuestionType = "synonym_match"

	// TypeAntonymMatch asks for an antonym of the term.
	TypeAntonymMatch QuestionType = "antonym_match"

	// TypeRootMeaning asks what the term's root means.
	TypeRootMeaning QuestionType = "root_meaning"
)

// AllTypes returns every question type in a fixed order.
func AllTypes() []QuestionType {
	return []QuestionType{
		TypeDefinitionRecall,
		TypeWordFromDefinition,
		TypeDefinitionFromWord,
		TypeSentenceCompletion,
		TypeSynonymMatch,
		TypeAntonymMatch,
		TypeRootMeaning,
	}
}

// Format returns how the learner answers this type of question.
func (t QuestionType) Format() AnswerFormat {
	if t == TypeDefinitionRecall {
		return FormatFreeText
	}
	return FormatMultipleChoice
}

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	for _, known := range AllTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable label.
func (t QuestionType) DisplayName() string {
	switch t {
	case TypeDefinitionRecall:
		return "Definition recall"
	case TypeWordFromDefinition:
		return "Word from definition"
	case TypeDefinitionFromWord:
		return "Definition from word"
	case TypeSentenceCompletion:
		return "Sentence completion"
	case TypeSynonymMatch:
		return "Synonym match"
	case TypeAntonymMatch:
		return "Antonym match"
	case TypeRootMeaning:
		return "Root meaning"
	default:
		return string(t)
	}
}

// AnswerFormat describes how the learner provides their answer.
type AnswerFormat string

const (
	// FormatFreeText means the learner types the answer.
	FormatFreeText AnswerFormat = "free_text"

	// FormatMultipleChoice means the learner picks one of Options.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// Question is a generated quiz item ready for display.
type Question struct {
	Type   QuestionType
	Format AnswerFormat

	// Prompt is the text shown to the learner.
	Prompt string

	// Answer is the correct answer. For multiple choice it is the text of
	// the correct option.
	Answer string

	// Options is populated only for multiple choice, in display order.
	Options []string

	// Hint is optional; empty when there is nothing useful to say.
	Hint string

	// WordID is the word this question was generated for.
	WordID string
}

// AnswerIndex returns the 0-based position of Answer in Options, or -1.
func (q *Question) AnswerIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}
