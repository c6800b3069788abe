package spacedrep

import (
	"time"

	"github.com/abhisek/lexis/internal/words"
)

// Forecast counts scheduled words falling due on each of the next days
// days. Index 0 covers everything due up to the end of today, including
// overdue words; unscheduled words are not counted.
func Forecast(pool []*words.Word, now time.Time, days int) []int {
	if days <= 0 {
		return nil
	}
	counts := make([]int, days)
	startOfTomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	for _, w := range pool {
		if w == nil || !w.Scheduled() {
			continue
		}
		if w.NextReviewAt.Before(startOfTomorrow) {
			counts[0]++
			continue
		}
		day := 1
		for boundary := startOfTomorrow.AddDate(0, 0, 1); day < days; boundary = boundary.AddDate(0, 0, 1) {
			if w.NextReviewAt.Before(boundary) {
				counts[day]++
				break
			}
			day++
		}
	}
	return counts
}
