package feynman

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexis/internal/words"
)

const systemPrompt = `You are a vocabulary coach using the Feynman technique. A learner has tried to explain a word in their own words and use it in a sentence. Judge whether the explanation captures the meaning and whether the sentence uses the word correctly. Be brief and encouraging.`

func buildUserMessage(w *words.Word, sub Submission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", w.Term)
	if w.PartOfSpeech != "" {
		fmt.Fprintf(&b, "Part of speech: %s\n", w.PartOfSpeech)
	}
	fmt.Fprintf(&b, "Dictionary definition: %s\n", w.Definition)
	if w.HasSynonyms() {
		fmt.Fprintf(&b, "Synonyms: %s\n", strings.Join(w.Synonyms, ", "))
	}

	b.WriteString("\nLearner's explanation:\n")
	b.WriteString(orNone(sub.Explanation))
	b.WriteString("\n\nLearner's example sentence:\n")
	b.WriteString(orNone(sub.Example))

	b.WriteString(`

Instructions:
Rate the learner from 0 to 5. Do not reward copying the dictionary definition word for word. In the feedback, name the one thing that would most improve the explanation.`)

	return b.String()
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
