// Package quiz builds quiz questions for words and checks learner answers.
package quiz

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/words"
)

const blank = "_____"

// Generator produces questions. All randomness comes from the injected
// source, so a seeded source gives reproducible questions.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a generator. A nil rng is seeded from the clock.
func New(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Generator{cfg: cfg.normalized(), rng: rng}
}

// IsAvailable reports whether w carries the data question type t needs.
func IsAvailable(t QuestionType, w *words.Word) bool {
	if w == nil || strings.TrimSpace(w.Term) == "" {
		return false
	}
	switch t {
	case TypeDefinitionRecall, TypeWordFromDefinition, TypeDefinitionFromWord:
		return strings.TrimSpace(w.Definition) != ""
	case TypeSentenceCompletion:
		return termPattern(w.Term).MatchString(w.Example)
	case TypeSynonymMatch:
		return w.HasSynonyms()
	case TypeAntonymMatch:
		return w.HasAntonyms()
	case TypeRootMeaning:
		return strings.TrimSpace(w.Root) != "" && strings.TrimSpace(w.RootMeaning) != ""
	default:
		return false
	}
}

// AvailableTypes returns the question types w supports, in AllTypes order.
func AvailableTypes(w *words.Word) []QuestionType {
	return lo.Filter(AllTypes(), func(t QuestionType, _ int) bool {
		return IsAvailable(t, w)
	})
}

// Generate builds a question of type t for w. Multiple choice distractors
// are drawn from pool. Returns ErrUnavailable when w lacks the data for t,
// ErrNotEnoughDistractors when pool is too small, or a *ValidationError.
func (g *Generator) Generate(w *words.Word, t QuestionType, pool []*words.Word) (*Question, error) {
	if !IsAvailable(t, w) {
		return nil, fmt.Errorf("%s for %q: %w", t, termOf(w), ErrUnavailable)
	}

	q := &Question{
		Type:   t,
		Format: t.Format(),
		WordID: w.ID,
		Hint:   w.Mnemonic,
	}

	var (
		candidates func(*words.Word) []string
		preferred  []string
		exclude    []string
	)

	switch t {
	case TypeDefinitionRecall:
		q.Prompt = fmt.Sprintf("Which word means: %q?", w.Definition)
		q.Answer = w.Term
		if q.Hint == "" {
			q.Hint = letterHint(w.Term)
		}
	case TypeWordFromDefinition:
		q.Prompt = fmt.Sprintf("Which word means: %q?", w.Definition)
		q.Answer = w.Term
		candidates = terms
	case TypeDefinitionFromWord:
		q.Prompt = fmt.Sprintf("What does %q mean?", w.Term)
		q.Answer = w.Definition
		candidates = definitions
	case TypeSentenceCompletion:
		q.Prompt = "Complete the sentence: " + termPattern(w.Term).ReplaceAllString(w.Example, blank)
		q.Answer = w.Term
		candidates = terms
	case TypeSynonymMatch:
		q.Prompt = fmt.Sprintf("Which word is closest in meaning to %q?", w.Term)
		q.Answer = g.pickOne(w.Synonyms)
		candidates = terms
		exclude = append([]string{w.Term}, w.Synonyms...)
	case TypeAntonymMatch:
		q.Prompt = fmt.Sprintf("Which word is most nearly opposite to %q?", w.Term)
		q.Answer = g.pickOne(w.Antonyms)
		candidates = terms
		// The word's own synonyms make the strongest wrong answers.
		preferred = w.Synonyms
		exclude = append([]string{w.Term}, w.Antonyms...)
	case TypeRootMeaning:
		q.Prompt = fmt.Sprintf("The root %q in %q means:", w.Root, w.Term)
		q.Answer = w.RootMeaning
		candidates = func(o *words.Word) []string {
			if strings.EqualFold(strings.TrimSpace(o.Root), strings.TrimSpace(w.Root)) {
				return nil
			}
			return []string{o.RootMeaning}
		}
	}

	if q.Format == FormatMultipleChoice {
		exclude = append(exclude, q.Answer)
		distractors, err := g.distractors(w, pool, g.cfg.OptionCount-1, candidates, preferred, exclude)
		if err != nil {
			return nil, fmt.Errorf("%s for %q: %w", t, w.Term, err)
		}
		q.Options = append(distractors, q.Answer)
		g.rng.Shuffle(len(q.Options), func(i, j int) {
			q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
		})
	}

	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q, w); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// Pick generates a question of a random type w supports. Types that fail
// for this pool are skipped; the last failure is returned if none succeed.
func (g *Generator) Pick(w *words.Word, pool []*words.Word) (*Question, error) {
	types := AvailableTypes(w)
	if len(types) == 0 {
		return nil, fmt.Errorf("no question type for %q: %w", termOf(w), ErrUnavailable)
	}
	g.rng.Shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})

	var lastErr error
	for _, t := range types {
		q, err := g.Generate(w, t, pool)
		if err == nil {
			return q, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (g *Generator) pickOne(values []string) string {
	nonBlank := lo.Filter(values, func(v string, _ int) bool {
		return strings.TrimSpace(v) != ""
	})
	if len(nonBlank) == 0 {
		return ""
	}
	return strings.TrimSpace(nonBlank[g.rng.IntN(len(nonBlank))])
}

func terms(w *words.Word) []string {
	return []string{w.Term}
}

func definitions(w *words.Word) []string {
	return []string{w.Definition}
}

// termPattern matches words that start with the term, so suffixed forms
// ("meanders") are blanked but words merely containing it ("inspired" for
// "ire") are not.
func termPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(term)) + `\w*\b`)
}

func letterHint(term string) string {
	first, _ := utf8.DecodeRuneInString(term)
	return fmt.Sprintf("Starts with %q, %d letters", string(first), utf8.RuneCountInString(term))
}

func termOf(w *words.Word) string {
	if w == nil {
		return ""
	}
	return w.Term
}
