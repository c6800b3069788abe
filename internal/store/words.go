package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/lexis/internal/words"
)

// ErrNotFound is returned when a word id is not in the store.
var ErrNotFound = errors.New("word not found")

const wordsTableName = "words"

// wordColumns is the column order used by every insert and select.
var wordColumns = []string{
	"id", "position", "term", "definition", "part_of_speech", "example",
	"synonyms", "antonyms", "mnemonic", "root", "root_meaning", "difficulty",
	"stage", "feynman_confidence", "user_explanation", "user_example",
	"deep_learned_at", "struggling",
	"repetitions", "ease_factor", "interval_days", "last_reviewed_at",
	"next_review_at", "times_reviewed", "times_correct",
}

func wordsTable() *entsql.TableBuilder {
	text := func(name string) *entsql.ColumnBuilder {
		return entsql.Column(name).Type("TEXT").Attr("NOT NULL DEFAULT ''")
	}
	integer := func(name string) *entsql.ColumnBuilder {
		return entsql.Column(name).Type("INTEGER").Attr("NOT NULL DEFAULT 0")
	}
	return builder().CreateTable(wordsTableName).IfNotExists().
		Columns(
			entsql.Column("id").Type("TEXT").Attr("NOT NULL"),
			integer("position"),
			text("term"),
			text("definition"),
			text("part_of_speech"),
			text("example"),
			text("synonyms"),
			text("antonyms"),
			text("mnemonic"),
			text("root"),
			text("root_meaning"),
			integer("difficulty"),
			text("stage"),
			integer("feynman_confidence"),
			text("user_explanation"),
			text("user_example"),
			text("deep_learned_at"),
			integer("struggling"),
			integer("repetitions"),
			entsql.Column("ease_factor").Type("REAL").Attr("NOT NULL DEFAULT 2.5"),
			entsql.Column("interval_days").Type("INTEGER").Attr("NOT NULL DEFAULT 1"),
			text("last_reviewed_at"),
			text("next_review_at"),
			integer("times_reviewed"),
			integer("times_correct"),
		).
		PrimaryKey("id")
}

// ListWords returns every word in deck order.
func (s *Store) ListWords(ctx context.Context) ([]*words.Word, error) {
	query, args := builder().Select(wordColumns...).
		From(entsql.Table(wordsTableName)).
		OrderBy("position", "id").
		Query()
	return s.queryWords(ctx, query, args)
}

// GetWord returns one word or ErrNotFound.
func (s *Store) GetWord(ctx context.Context, id string) (*words.Word, error) {
	query, args := builder().Select(wordColumns...).
		From(entsql.Table(wordsTableName)).
		Where(entsql.EQ("id", id)).
		Query()
	ws, err := s.queryWords(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return ws[0], nil
}

// CountWords returns the number of stored words.
func (s *Store) CountWords(ctx context.Context) (int, error) {
	query, args := builder().Select(entsql.Count("*")).From(entsql.Table(wordsTableName)).Query()
	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("count words: %w", err)
		}
	}
	return n, rows.Err()
}

// SaveWords upserts ws in one transaction. New words are appended to the end
// of the deck; existing words keep their position.
func (s *Store) SaveWords(ctx context.Context, ws []*words.Word) error {
	if len(ws) == 0 {
		return nil
	}

	next, err := s.nextPosition(ctx)
	if err != nil {
		return err
	}

	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	for i, w := range ws {
		if w == nil {
			continue
		}
		values, err := wordValues(w, next+i)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encode %q: %w", w.ID, err)
		}

		query, args := builder().Insert(wordsTableName).
			Columns(wordColumns...).
			Values(values...).
			OnConflict(
				entsql.ConflictColumns("id"),
				entsql.ResolveWith(func(u *entsql.UpdateSet) {
					for _, c := range wordColumns {
						if c != "id" && c != "position" {
							u.SetExcluded(c)
						}
					}
				}),
			).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			tx.Rollback()
			return fmt.Errorf("save %q: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.WithField("count", len(ws)).Debug("words saved")
	return nil
}

func (s *Store) nextPosition(ctx context.Context) (int, error) {
	query, args := builder().Select(entsql.Max("position")).From(entsql.Table(wordsTableName)).Query()
	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("next position: %w", err)
	}
	defer rows.Close()

	var last sql.NullInt64
	if rows.Next() {
		if err := rows.Scan(&last); err != nil {
			return 0, fmt.Errorf("next position: %w", err)
		}
	}
	if !last.Valid {
		return 0, rows.Err()
	}
	return int(last.Int64) + 1, rows.Err()
}

func (s *Store) queryWords(ctx context.Context, query string, args []any) ([]*words.Word, error) {
	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var out []*words.Word
	for rows.Next() {
		w, err := scanWord(&rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func wordValues(w *words.Word, position int) ([]any, error) {
	synonyms, err := json.Marshal(nonNil(w.Synonyms))
	if err != nil {
		return nil, err
	}
	antonyms, err := json.Marshal(nonNil(w.Antonyms))
	if err != nil {
		return nil, err
	}
	return []any{
		w.ID, position, w.Term, w.Definition, w.PartOfSpeech, w.Example,
		string(synonyms), string(antonyms), w.Mnemonic, w.Root, w.RootMeaning, w.Difficulty,
		string(w.Stage), w.FeynmanConfidence, w.UserExplanation, w.UserExample,
		formatTime(w.DeepLearnedAt), w.Struggling,
		w.Repetitions, w.EaseFactor, w.IntervalDays, formatTime(w.LastReviewedAt),
		formatTime(w.NextReviewAt), w.TimesReviewed, w.TimesCorrect,
	}, nil
}

func scanWord(rows *entsql.Rows) (*words.Word, error) {
	var (
		w                      words.Word
		position               int
		stage                  string
		synonyms, antonyms     string
		deepAt, lastAt, nextAt string
	)
	err := rows.Scan(
		&w.ID, &position, &w.Term, &w.Definition, &w.PartOfSpeech, &w.Example,
		&synonyms, &antonyms, &w.Mnemonic, &w.Root, &w.RootMeaning, &w.Difficulty,
		&stage, &w.FeynmanConfidence, &w.UserExplanation, &w.UserExample,
		&deepAt, &w.Struggling,
		&w.Repetitions, &w.EaseFactor, &w.IntervalDays, &lastAt,
		&nextAt, &w.TimesReviewed, &w.TimesCorrect,
	)
	if err != nil {
		return nil, fmt.Errorf("scan word: %w", err)
	}

	w.Stage = words.Stage(stage)
	if err := json.Unmarshal([]byte(synonyms), &w.Synonyms); err != nil {
		return nil, fmt.Errorf("word %q synonyms: %w", w.ID, err)
	}
	if err := json.Unmarshal([]byte(antonyms), &w.Antonyms); err != nil {
		return nil, fmt.Errorf("word %q antonyms: %w", w.ID, err)
	}
	for _, f := range []struct {
		raw string
		dst *time.Time
	}{{deepAt, &w.DeepLearnedAt}, {lastAt, &w.LastReviewedAt}, {nextAt, &w.NextReviewAt}} {
		t, err := parseTime(f.raw)
		if err != nil {
			return nil, fmt.Errorf("word %q: %w", w.ID, err)
		}
		*f.dst = t
	}
	return &w, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Timestamps are stored as RFC 3339 text in UTC. The zero time is ''.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}
