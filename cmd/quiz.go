package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/quiz"
	"github.com/abhisek/lexis/internal/report"
	"github.com/abhisek/lexis/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Quiz previewed words",
	Long: `Ask one question per word that is ready for a quiz. Multiple choice
questions take the option number or its text; free text answers tolerate
small typos. An empty answer skips the question.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

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

		queue := a.engine.QuizQueue(pool, count)
		if len(queue) == 0 {
			fmt.Fprintln(a.out, "No words are ready for a quiz. Run `lexis review` first.")
			return nil
		}

		gen := quiz.New(a.cfg.QuizParams(), rand.New(rand.NewPCG(seed, seed)))

		var asked, correct int
		for i, w := range queue {
			q, err := gen.Pick(w, pool)
			if err != nil {
				a.log.WithError(err).WithField("word", w.Term).Warn("no question generated")
				continue
			}

			fmt.Fprintf(a.out, "── Question %d/%d ──\n", i+1, len(queue))
			fmt.Fprint(a.out, report.Question(q))

			start := time.Now()
			answer, ok := a.prompt("\nYour answer: ")
			if !ok {
				break
			}
			if answer == "" {
				fmt.Fprintln(a.out, "(skipped)")
				fmt.Fprintln(a.out)
				continue
			}
			elapsed := time.Since(start)

			res := quiz.CheckChoice(q, answer)
			rev := a.engine.RecordQuizAttempt(w, res.IsCorrect)
			if err := a.commit(ctx, w, store.KindQuiz, res.IsCorrect, elapsed); err != nil {
				return err
			}

			fmt.Fprint(a.out, report.Result(res, q))
			fmt.Fprint(a.out, report.Transition(rev, w.Term))
			fmt.Fprintln(a.out)

			asked++
			if res.IsCorrect {
				correct++
			}
		}

		fmt.Fprintf(a.out, "── Summary: %d/%d correct ──\n", correct, asked)
		a.log.WithFields(logrus.Fields{"asked": asked, "correct": correct}).Debug("quiz finished")
		return nil
	},
}

func init() {
	quizCmd.Flags().Int("count", 10, "Maximum number of questions")
	quizCmd.Flags().Uint64("seed", 0, "Random seed for question selection (0 picks one)")
}
