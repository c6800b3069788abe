package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/words"
)

// DeckEntry is one word in an importable deck file.
type DeckEntry struct {
	ID           string   `json:"id,omitempty"`
	Term         string   `json:"term" validate:"required"`
	Definition   string   `json:"definition" validate:"required"`
	PartOfSpeech string   `json:"part_of_speech,omitempty"`
	Example      string   `json:"example,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty"`
	Mnemonic     string   `json:"mnemonic,omitempty"`
	Root         string   `json:"root,omitempty"`
	RootMeaning  string   `json:"root_meaning,omitempty" validate:"required_with=Root"`
	Difficulty   int      `json:"difficulty,omitempty" validate:"omitempty,min=1,max=5"`
}

// ImportResult counts what an import did.
type ImportResult struct {
	Added   int
	Updated int
}

var deckValidator = validator.New()

// ImportDeck reads a JSON array of DeckEntry and upserts it. Entries match
// existing words by id, or by term when the id is omitted; matched words
// keep their learning state and only have their content replaced. Entries
// without an id get a fresh UUID.
func (s *Store) ImportDeck(ctx context.Context, r io.Reader) (ImportResult, error) {
	var entries []DeckEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return ImportResult{}, fmt.Errorf("decode deck: %w", err)
	}
	for i := range entries {
		if err := deckValidator.Struct(&entries[i]); err != nil {
			return ImportResult{}, fmt.Errorf("deck entry %d (%q): %w", i, entries[i].Term, err)
		}
	}

	existing, err := s.ListWords(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	byID := make(map[string]*words.Word, len(existing))
	byTerm := make(map[string]*words.Word, len(existing))
	for _, w := range existing {
		byID[w.ID] = w
		byTerm[termKey(w.Term)] = w
	}

	var res ImportResult
	batch := make([]*words.Word, 0, len(entries))
	for _, e := range entries {
		w := byID[e.ID]
		if w == nil && e.ID == "" {
			w = byTerm[termKey(e.Term)]
		}
		if w != nil {
			res.Updated++
		} else {
			id := e.ID
			if id == "" {
				id = uuid.NewString()
			}
			w = words.New(id, e.Term, e.Definition)
			res.Added++
		}
		e.apply(w)
		byID[w.ID] = w
		byTerm[termKey(w.Term)] = w
		batch = append(batch, w)
	}

	if err := s.SaveWords(ctx, batch); err != nil {
		return ImportResult{}, fmt.Errorf("save deck: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"added": res.Added, "updated": res.Updated}).Debug("deck imported")
	return res, nil
}

func (e DeckEntry) apply(w *words.Word) {
	w.Term = strings.TrimSpace(e.Term)
	w.Definition = strings.TrimSpace(e.Definition)
	w.PartOfSpeech = e.PartOfSpeech
	w.Example = e.Example
	w.Synonyms = e.Synonyms
	w.Antonyms = e.Antonyms
	w.Mnemonic = e.Mnemonic
	w.Root = e.Root
	w.RootMeaning = e.RootMeaning
	w.Difficulty = words.ClampInt(e.Difficulty, 1, 5)
}

func termKey(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
