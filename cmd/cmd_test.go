package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDeck = `[
  {"term": "abate", "definition": "to become less intense or widespread", "part_of_speech": "verb",
   "example": "The storm began to abate.", "synonyms": ["subside", "lessen"], "difficulty": 2},
  {"term": "candid", "definition": "truthful and straightforward; frank", "part_of_speech": "adjective",
   "synonyms": ["frank"], "antonyms": ["guarded"], "difficulty": 1},
  {"term": "laconic", "definition": "using very few words", "part_of_speech": "adjective",
   "synonyms": ["terse"], "difficulty": 3}
]`

// isolate keeps the user's config and API keys out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "LEXIS_DB"} {
		t.Setenv(k, "")
	}
	return filepath.Join(t.TempDir(), "lexis.db")
}

func execute(t *testing.T, db, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(append([]string{"--db", db}, args...))
	err := rootCmd.Execute()
	return ansi.Strip(out.String()), err
}

func mustExecute(t *testing.T, db, input string, args ...string) string {
	t.Helper()
	out, err := execute(t, db, input, args...)
	require.NoError(t, err, "lexis %v", args)
	return out
}

func importDeck(t *testing.T, db string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(testDeck), 0o644))

	out := mustExecute(t, db, "", "import", path)
	assert.Contains(t, out, "3 added, 0 updated")

	out = mustExecute(t, db, "", "import", path)
	assert.Contains(t, out, "0 added, 3 updated")
}

func TestImportAndStats(t *testing.T) {
	db := isolate(t)
	importDeck(t, db)

	out := mustExecute(t, db, "", "stats")
	assert.Contains(t, out, "3 words")
	assert.Contains(t, out, "Next: preview")
	assert.Contains(t, out, "3 new words waiting to be previewed")
}

func TestStats_EmptyDeck(t *testing.T) {
	db := isolate(t)
	out := mustExecute(t, db, "", "stats")
	assert.Contains(t, out, "No words yet")
}

func TestPlan(t *testing.T) {
	db := isolate(t)
	importDeck(t, db)

	out := mustExecute(t, db, "", "plan", "--goal", "5")
	assert.Contains(t, out, "Today's session")
	assert.Contains(t, out, "Preview")
	assert.Contains(t, out, "candid adjective")
}

func TestReview_SwipesAndStops(t *testing.T) {
	db := isolate(t)
	importDeck(t, db)

	out := mustExecute(t, db, "y\nmaybe\nn\nq\n", "review")
	assert.Contains(t, out, "Card 1/3")
	assert.Contains(t, out, "Reviewed 2 words, knew 1")

	out = mustExecute(t, db, "", "stats")
	assert.Regexp(t, `Previewed\s.*\s2\n`, out)
}

func TestQuiz_NothingReady(t *testing.T) {
	db := isolate(t)
	importDeck(t, db)

	out := mustExecute(t, db, "", "quiz")
	assert.Contains(t, out, "No words are ready for a quiz")
}

func TestDeep_Offline(t *testing.T) {
	db := isolate(t)
	importDeck(t, db)

	input := "It means to become less intense, like a storm calming down over time.\n" +
		"We waited for the noise to abate before we spoke.\n"
	out := mustExecute(t, db, input, "deep", "ABATE", "--offline")
	assert.Contains(t, out, "(heuristic)")
	assert.Contains(t, out, "abate is now deep learned.")

	out = mustExecute(t, db, "", "stats")
	assert.Regexp(t, `Deep learned\s.*\s1\n`, out)
}

func TestDeep_UnknownTerm(t *testing.T) {
	db := isolate(t)
	importDeck(t, db)

	_, err := execute(t, db, "", "deep", "zephyr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no word "zephyr"`)
}

func TestPredict(t *testing.T) {
	db := isolate(t)
	importDeck(t, db)

	out := mustExecute(t, db, "", "predict", "--target", "165")
	assert.Contains(t, out, "Predicted score:")
	assert.Contains(t, out, "target 165")
	assert.Contains(t, out, "0 / 3")
}

func TestVersion(t *testing.T) {
	db := isolate(t)
	out := mustExecute(t, db, "", "version")
	assert.Equal(t, "lexis (devel)\n", out)
}

func TestQuiz_AnswersAndSkips(t *testing.T) {
	db := isolate(t)
	importDeck(t, db)
	mustExecute(t, db, "y\ny\ny\n", "review")

	out := mustExecute(t, db, "zzz\n\nzzz\n", "quiz", "--seed", "7")
	assert.Contains(t, out, "Question 1/3")
	assert.Contains(t, out, "(skipped)")
	assert.Contains(t, out, "Summary: 0/2 correct")
}
