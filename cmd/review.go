package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/report"
	"github.com/abhisek/lexis/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Swipe through due and new words",
	Long: `Show due and new words one card at a time, most overdue first.
Answer y if you knew the word, n if you did not, or q to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		limit := a.cfg.Session.DailyGoal
		if cmd.Flags().Changed("limit") {
			limit, _ = cmd.Flags().GetInt("limit")
		}

		ctx := cmd.Context()
		pool, err := a.store.ListWords(ctx)
		if err != nil {
			return fmt.Errorf("load words: %w", err)
		}

		deck := a.engine.Scheduler().SelectDue(pool, a.engine.Now(), limit)
		if len(deck) == 0 {
			fmt.Fprintln(a.out, "Nothing to review right now.")
			return nil
		}

		var reviewed, known int
	cards:
		for i, w := range deck {
			fmt.Fprintf(a.out, "── Card %d/%d ──\n", i+1, len(deck))
			fmt.Fprint(a.out, report.Card(w, a.engine.Now()))

			start := time.Now()
			var knew bool
			for {
				answer, ok := a.prompt("Knew it? [y/n/q]: ")
				if !ok {
					break cards
				}
				switch strings.ToLower(answer) {
				case "y", "yes":
					knew = true
				case "n", "no":
					knew = false
				case "q", "quit":
					break cards
				default:
					continue
				}
				break
			}

			rev := a.engine.RecordSwipe(w, knew)
			if err := a.commit(ctx, w, store.KindSwipe, knew, time.Since(start)); err != nil {
				return err
			}
			fmt.Fprint(a.out, report.Transition(rev, w.Term))
			fmt.Fprintln(a.out)

			reviewed++
			if knew {
				known++
			}
		}

		fmt.Fprintf(a.out, "── Reviewed %d words, knew %d ──\n", reviewed, known)
		a.log.WithFields(logrus.Fields{"reviewed": reviewed, "known": known}).Debug("review finished")
		return nil
	},
}

func init() {
	reviewCmd.Flags().Int("limit", 0, "Maximum cards (default: session.daily_goal from config)")
}
