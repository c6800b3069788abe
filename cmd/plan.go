package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/report"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's session plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		goal := a.cfg.Session.DailyGoal
		if cmd.Flags().Changed("goal") {
			goal, _ = cmd.Flags().GetInt("goal")
		}

		pool, err := a.store.ListWords(cmd.Context())
		if err != nil {
			return fmt.Errorf("load words: %w", err)
		}

		session := a.engine.BuildDailySession(pool, goal)
		summary := a.engine.DailySessionSummary(pool, goal)
		fmt.Fprint(a.out, report.Plan(session, summary))

		a.log.WithFields(logrus.Fields{
			"goal":    goal,
			"preview": summary.PreviewCount,
			"quiz":    summary.QuizCount,
			"deep":    summary.HasDeepLearn,
		}).Debug("plan built")
		return nil
	},
}

func init() {
	planCmd.Flags().Int("goal", 0, "Daily word goal (default: session.daily_goal from config)")
}
