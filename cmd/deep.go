package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/feynman"
	"github.com/abhisek/lexis/internal/report"
	"github.com/abhisek/lexis/internal/store"
	"github.com/abhisek/lexis/internal/words"
)

var deepCmd = &cobra.Command{
	Use:   "deep [term]",
	Short: "Deep-learn a word by explaining it",
	Long: `Explain a word in your own words and use it in a sentence. The explanation
is graded 0-5 by the configured LLM, or offline when no API key is set.
Without a term, the quiz-passed word with the lowest confidence is chosen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offline, _ := cmd.Flags().GetBool("offline")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		pool, err := a.store.ListWords(ctx)
		if err != nil {
			return fmt.Errorf("load words: %w", err)
		}

		var w *words.Word
		if len(args) == 1 {
			found, ok := lo.Find(pool, func(c *words.Word) bool {
				return strings.EqualFold(c.Term, args[0])
			})
			if !ok {
				return fmt.Errorf("no word %q in the deck", args[0])
			}
			w = found
		} else {
			queue := a.engine.DeepLearnQueue(pool, 1)
			if len(queue) == 0 {
				fmt.Fprintln(a.out, "No words need deep learning right now.")
				return nil
			}
			w = queue[0]
		}

		fmt.Fprint(a.out, report.Card(w, a.engine.Now()))

		start := time.Now()
		explanation, ok := a.prompt("Explain it in your own words: ")
		if !ok {
			return nil
		}
		example, ok := a.prompt("Use it in a sentence: ")
		if !ok {
			return nil
		}
		elapsed := time.Since(start)

		sub := feynman.Submission{Explanation: explanation, Example: example}
		grade, err := a.grader(ctx, offline).Grade(ctx, w, sub)
		if err != nil {
			return fmt.Errorf("grade explanation: %w", err)
		}

		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, report.Grade(grade))

		before := w.Stage
		a.engine.MarkDeepLearnedWithNotes(w, grade.Confidence, sub.Explanation, sub.Example)
		passed := grade.Confidence >= a.engine.Policy().DeepLearnConfidence
		if err := a.commit(ctx, w, store.KindDeep, passed, elapsed); err != nil {
			return err
		}
		if w.Stage != before && w.Stage == words.StageDeepLearned {
			fmt.Fprintf(a.out, "%s is now %s.\n", w.Term, strings.ToLower(w.Stage.DisplayName()))
		}

		a.log.WithFields(logrus.Fields{
			"word":       w.Term,
			"confidence": grade.Confidence,
			"source":     grade.Source,
		}).Debug("deep learn graded")
		return nil
	},
}

func init() {
	deepCmd.Flags().Bool("offline", false, "Grade with the offline heuristic even when an LLM is configured")
}
