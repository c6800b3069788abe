package quiz

import (
	"strings"

	"github.com/abhisek/lexis/internal/words"
)

// distractors returns n distinct wrong options for target. Values from
// preferred come first, then candidates from pool words sharing both part
// of speech and difficulty with target, then those sharing one of them,
// then the rest. Each group is shuffled. Values matching exclude, or each
// other, after normalization are skipped.
func (g *Generator) distractors(target *words.Word, pool []*words.Word, n int, candidates func(*words.Word) []string, preferred, exclude []string) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	groups := make([][]string, 4)
	groups[0] = append(groups[0], preferred...)
	for _, w := range pool {
		if w == nil || w == target || (w.ID != "" && w.ID == target.ID) {
			continue
		}
		tier := similarityTier(target, w)
		groups[tier] = append(groups[tier], candidates(w)...)
	}

	seen := make(map[string]bool, len(exclude)+n)
	for _, e := range exclude {
		seen[Normalize(e)] = true
	}

	out := make([]string, 0, n)
	for _, group := range groups {
		g.rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		for _, v := range group {
			v = strings.TrimSpace(v)
			key := Normalize(v)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
			if len(out) == n {
				return out, nil
			}
		}
	}
	return nil, ErrNotEnoughDistractors
}

// similarityTier ranks how closely w resembles target: 1 for the same part
// of speech and difficulty, 2 for one of them, 3 otherwise.
func similarityTier(target, w *words.Word) int {
	samePOS := target.PartOfSpeech != "" && strings.EqualFold(target.PartOfSpeech, w.PartOfSpeech)
	sameDifficulty := target.Difficulty == w.Difficulty
	switch {
	case samePOS && sameDifficulty:
		return 1
	case samePOS || sameDifficulty:
		return 2
	default:
		return 3
	}
}
