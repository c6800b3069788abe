package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/predict"
	"github.com/abhisek/lexis/internal/report"
)

// responseWindow is how many recent timed reviews feed the speed bonus.
const responseWindow = 50

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the exam verbal score",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		target := a.cfg.Session.TargetScore
		if cmd.Flags().Changed("target") {
			target, _ = cmd.Flags().GetInt("target")
		}

		ctx := cmd.Context()
		pool, err := a.store.ListWords(ctx)
		if err != nil {
			return fmt.Errorf("load words: %w", err)
		}
		avg, err := a.store.AverageResponseSeconds(ctx, responseWindow)
		if err != nil {
			return fmt.Errorf("load response times: %w", err)
		}

		p := predict.NewPredictor(a.cfg.PredictorParams()).FromPool(pool, avg, target)
		fmt.Fprint(a.out, report.Prediction(p))

		a.log.WithFields(logrus.Fields{
			"score":     p.Score,
			"readiness": p.Readiness,
		}).Debug("prediction made")
		return nil
	},
}

func init() {
	predictCmd.Flags().Int("target", 0, "Target score (default: session.target_score from config)")
}
