package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/learningpath"
	"github.com/abhisek/lexis/internal/report"
	"github.com/abhisek/lexis/internal/spacedrep"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("forecast")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		pool, err := a.store.ListWords(cmd.Context())
		if err != nil {
			return fmt.Errorf("load words: %w", err)
		}

		st := a.engine.Stats(pool)
		fmt.Fprint(a.out, report.Stats(st, learningpath.RecommendFromStats(st)))

		if days > 0 && st.Total > 0 {
			now := a.engine.Now()
			fmt.Fprintln(a.out)
			fmt.Fprint(a.out, report.Forecast(spacedrep.Forecast(pool, now, days), now))
		}

		a.log.WithField("words", st.Total).Debug("stats shown")
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("forecast", 7, "Days of upcoming reviews to show (0 disables)")
}
