package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/config"
	"github.com/abhisek/lexis/internal/feynman"
	"github.com/abhisek/lexis/internal/learningpath"
	"github.com/abhisek/lexis/internal/llm"
	"github.com/abhisek/lexis/internal/logging"
	"github.com/abhisek/lexis/internal/store"
	"github.com/abhisek/lexis/internal/words"
)

// app bundles what a command needs: configuration, logger, the open store
// and an engine built from the configured policy.
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	store  *store.Store
	engine *learningpath.Engine
	out    io.Writer
	in     *bufio.Scanner
}

// openApp loads configuration, builds the logger and opens the store.
// Callers must Close the result.
func openApp(cmd *cobra.Command) (*app, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(cmd.Context(), dbPath, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.WithField("db", dbPath).Debug("store opened")

	return &app{
		cfg:    cfg,
		log:    logger,
		store:  st,
		engine: learningpath.New(cfg.PathPolicy(), cfg.SpacedRepParams(), nil),
		out:    cmd.OutOrStdout(),
		in:     bufio.NewScanner(cmd.InOrStdin()),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from the config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// prompt prints label and reads one trimmed line. ok is false once input
// is exhausted.
func (a *app) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		fmt.Fprintln(a.out, "\n(input closed)")
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// commit persists w and appends one review log entry for it.
func (a *app) commit(ctx context.Context, w *words.Word, kind store.ReviewKind, correct bool, elapsed time.Duration) error {
	if err := a.store.SaveWords(ctx, []*words.Word{w}); err != nil {
		return fmt.Errorf("save %q: %w", w.Term, err)
	}
	_, err := a.store.AppendReview(ctx, store.Review{
		WordID:     w.ID,
		Kind:       kind,
		Correct:    correct,
		ResponseMs: elapsed.Milliseconds(),
		At:         a.engine.Now(),
	})
	if err != nil {
		return fmt.Errorf("log review of %q: %w", w.Term, err)
	}
	return nil
}

// grader returns the LLM grader with the offline heuristic as fallback,
// or just the heuristic when no provider can be configured.
func (a *app) grader(ctx context.Context, offline bool) feynman.Grader {
	heuristic := feynman.HeuristicGrader{}
	if offline {
		return heuristic
	}

	cfg := a.cfg.LLMParams()
	if !cfg.Discover() {
		a.log.Debug("no LLM API key configured, grading offline")
		return heuristic
	}
	provider, err := llm.NewProvider(ctx, cfg, a.log)
	if err != nil {
		a.log.WithError(err).Warn("LLM provider unavailable, grading offline")
		return heuristic
	}

	return feynman.Fallback{
		Primary:   feynman.NewLLMGrader(provider, feynman.DefaultConfig()),
		Secondary: heuristic,
		OnError: func(err error) {
			a.log.WithError(err).Warn("LLM grading failed, grading offline")
		},
	}
}
