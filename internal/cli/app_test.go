package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-engine/internal/config"
)

func testApp(stdin string) (*App, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cfg := config.Config{MaxAttempts: 6, DailySalt: "test_salt"}
	app := New(cfg).WithIO(strings.NewReader(stdin), &stdout, &stderr)
	return app, &stdout, &stderr
}

func writeWords(t *testing.T, list ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(list, "\n")+"\n"), 0o644))
	return path
}

func TestApp_Help(t *testing.T) {
	app, stdout, _ := testApp("")
	require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"--help"}))

	out := stdout.String()
	for _, sub := range []string{"play", "serve", "stats"} {
		assert.Contains(t, out, sub)
	}
}

func TestApp_PlayAndStats(t *testing.T) {
	ctx := context.Background()
	wordsFile := writeWords(t, "crane")
	db := filepath.Join(t.TempDir(), "results.db")

	app, stdout, _ := testApp("train\ncrane\nn\n")
	err := app.ExecuteWithArgs(ctx, []string{"play", "--words", wordsFile, "--db", db})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "You won! The word was 'crane'.")
	assert.NotContains(t, stdout.String(), "\033[")

	app, stdout, _ = testApp("brace\nplumb\nn\n")
	err = app.ExecuteWithArgs(ctx, []string{"play", "--words", wordsFile, "--db", db, "--max-attempts", "2", "--daily"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Attempt 2/2: ")
	assert.Contains(t, stdout.String(), "You lost! The word was 'crane'.")

	app, stdout, _ = testApp("")
	require.NoError(t, app.ExecuteWithArgs(ctx, []string{"stats", "--db", db}))
	out := stdout.String()
	assert.Contains(t, out, "Played:         2")
	assert.Contains(t, out, "Wins:           1 (50%)")
	assert.Contains(t, out, "Current streak: 0")
	assert.Contains(t, out, "Best streak:    1")
	assert.Contains(t, out, "  2: 1")
	assert.Contains(t, out, "daily")
}

func TestApp_PlayRejectRepeats(t *testing.T) {
	wordsFile := writeWords(t, "crane")
	app, stdout, _ := testApp("train\ntrain\ncrane\nn\n")
	err := app.ExecuteWithArgs(context.Background(), []string{"play", "-w", wordsFile, "--reject-repeats"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "You already guessed that word.")
	assert.Contains(t, stdout.String(), "Attempt 2/6: ")
	assert.NotContains(t, stdout.String(), "Attempt 3/6: ")
}

func TestApp_PlayBadWordList(t *testing.T) {
	app, _, _ := testApp("")
	err := app.ExecuteWithArgs(context.Background(), []string{"play", "--words", writeWords(t, "crane", "toolong")})
	assert.Error(t, err)

	app, _, _ = testApp("")
	err = app.ExecuteWithArgs(context.Background(), []string{"play", "--words", filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestApp_PlayEmptyWordList(t *testing.T) {
	app, _, _ := testApp("")
	err := app.ExecuteWithArgs(context.Background(), []string{"play", "--words", writeWords(t, "# nothing here")})
	assert.Error(t, err)
}

func TestApp_StatsNeedsDB(t *testing.T) {
	app, _, _ := testApp("")
	err := app.ExecuteWithArgs(context.Background(), []string{"stats"})
	assert.ErrorIs(t, err, errNoResults)
}

func TestApp_StatsJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "results.db")
	app, stdout, _ := testApp("")
	require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"stats", "--db", db, "--json"}))
	assert.Contains(t, stdout.String(), `"played": 0`)
	assert.Contains(t, stdout.String(), `"recent": []`)
}
