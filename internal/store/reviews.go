package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const reviewsTableName = "reviews"

// ReviewKind is the learner action that produced a review.
type ReviewKind string

const (
	KindSwipe ReviewKind = "swipe"
	KindQuiz  ReviewKind = "quiz"
	KindDeep  ReviewKind = "deep"
)

// Review is one entry of the append-only review log. Seq orders entries
// across kinds.
type Review struct {
	Seq        int64
	WordID     string
	Kind       ReviewKind
	Correct    bool
	ResponseMs int64
	At         time.Time
}

func reviewsTable() *entsql.TableBuilder {
	return builder().CreateTable(reviewsTableName).IfNotExists().
		Columns(
			entsql.Column("seq").Type("INTEGER").Attr("PRIMARY KEY AUTOINCREMENT"),
			entsql.Column("word_id").Type("TEXT").Attr("NOT NULL"),
			entsql.Column("kind").Type("TEXT").Attr("NOT NULL"),
			entsql.Column("correct").Type("INTEGER").Attr("NOT NULL DEFAULT 0"),
			entsql.Column("response_ms").Type("INTEGER").Attr("NOT NULL DEFAULT 0"),
			entsql.Column("reviewed_at").Type("TEXT").Attr("NOT NULL"),
		)
}

// AppendReview records r and returns its sequence number. A zero At is
// stamped with the current time.
func (s *Store) AppendReview(ctx context.Context, r Review) (int64, error) {
	if r.At.IsZero() {
		r.At = time.Now()
	}
	query, args := builder().Insert(reviewsTableName).
		Columns("word_id", "kind", "correct", "response_ms", "reviewed_at").
		Values(r.WordID, string(r.Kind), r.Correct, r.ResponseMs, formatTime(r.At)).
		Query()

	var res sql.Result
	if err := s.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("append review: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("append review: %w", err)
	}
	return seq, nil
}

// RecentReviews returns the newest limit reviews of kind, newest first.
// An empty kind matches every kind; limit <= 0 means no limit.
func (s *Store) RecentReviews(ctx context.Context, kind ReviewKind, limit int) ([]Review, error) {
	sel := builder().Select("seq", "word_id", "kind", "correct", "response_ms", "reviewed_at").
		From(entsql.Table(reviewsTableName)).
		OrderBy(entsql.Desc("seq"))
	if kind != "" {
		sel.Where(entsql.EQ("kind", string(kind)))
	}
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var (
			r    Review
			kind string
			at   string
		)
		if err := rows.Scan(&r.Seq, &r.WordID, &kind, &r.Correct, &r.ResponseMs, &at); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		r.Kind = ReviewKind(kind)
		t, err := parseTime(at)
		if err != nil {
			return nil, fmt.Errorf("review %d: %w", r.Seq, err)
		}
		r.At = t
		out = append(out, r)
	}
	return out, rows.Err()
}

// AverageResponseSeconds averages the timed answers among the newest lastN
// quiz reviews. It returns 0 when none were timed.
func (s *Store) AverageResponseSeconds(ctx context.Context, lastN int) (float64, error) {
	reviews, err := s.RecentReviews(ctx, KindQuiz, lastN)
	if err != nil {
		return 0, err
	}
	var total int64
	var n int
	for _, r := range reviews {
		if r.ResponseMs > 0 {
			total += r.ResponseMs
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(total) / float64(n) / 1000, nil
}
