package term

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/results"
)

type fakeRecorder struct{ entries []results.Entry }

func (f *fakeRecorder) Record(_ context.Context, e results.Entry) error {
	f.entries = append(f.entries, e)
	return nil
}

func play(t *testing.T, g *Game, input string) string {
	t.Helper()
	var out bytes.Buffer
	g.In = strings.NewReader(input)
	g.Out = &out
	if g.Picker == nil {
		g.Picker = game.Fixed("crane")
	}
	require.NoError(t, g.Run(context.Background()))
	return out.String()
}

func TestRendererPlain(t *testing.T) {
	r := &Renderer{}
	a := game.Attempt{Guess: "train", Result: game.Score("crane", "train")}
	assert.Equal(t, "train", r.Attempt(a))

	kb := r.Keyboard(game.FoldLetters([]game.Attempt{a}))
	assert.NotContains(t, kb, "t")
	assert.NotContains(t, kb, "i")
	assert.True(t, strings.HasPrefix(kb, "a b c d e f g h j k"), kb)
	assert.Contains(t, kb, "n o p q r s u")
}

func TestRendererColor(t *testing.T) {
	r := &Renderer{Color: true}
	a := game.Attempt{Guess: "train", Result: game.Score("crane", "train")}
	assert.Equal(t, gray+"t"+reset+green+"r"+reset+green+"a"+reset+gray+"i"+reset+yellow+"n"+reset, r.Attempt(a))

	kb := r.Keyboard(game.FoldLetters([]game.Attempt{a}))
	assert.True(t, strings.HasPrefix(kb, green+"a"+reset+" b c"), kb)
	assert.Contains(t, kb, yellow+"n"+reset)
}

func TestGameWin(t *testing.T) {
	rec := &fakeRecorder{}
	out := play(t, &Game{Recorder: rec}, "train\ncrane\nn\n")

	assert.Contains(t, out, "Attempt 1/6: ")
	assert.Contains(t, out, "Attempt 2/6: ")
	assert.NotContains(t, out, "Attempt 3/6: ")
	assert.Contains(t, out, "You won! The word was 'crane'.")
	assert.Contains(t, out, "Thanks for playing!")

	require.Len(t, rec.entries, 1)
	assert.Equal(t, "won", rec.entries[0].Outcome)
	assert.Equal(t, 2, rec.entries[0].Attempts)
	assert.Equal(t, "normal", rec.entries[0].Mode)
	assert.NotEmpty(t, rec.entries[0].RoundID)
}

func TestGameInvalidInputReprompts(t *testing.T) {
	rec := &fakeRecorder{}
	out := play(t, &Game{Recorder: rec}, "abc\ncr4ne\ncrane\nn\n")

	assert.Contains(t, out, "Invalid input: Enter exactly 5 letters.")
	assert.Contains(t, out, "Invalid input: Letters only.")
	// Rejected input never advances the attempt counter.
	assert.Equal(t, 3, strings.Count(out, "Attempt 1/6: "))
	require.Len(t, rec.entries, 1)
	assert.Equal(t, 1, rec.entries[0].Attempts)
}

func TestGameRepeatedGuess(t *testing.T) {
	rec := &fakeRecorder{}
	out := play(t, &Game{Recorder: rec, RejectRepeats: true}, "train\nTRAIN\ncrane\nn\n")
	assert.Contains(t, out, "You already guessed that word.")
	require.Len(t, rec.entries, 1)
	assert.Equal(t, 2, rec.entries[0].Attempts)

	rec = &fakeRecorder{}
	out = play(t, &Game{Recorder: rec}, "train\ntrain\ncrane\nn\n")
	assert.NotContains(t, out, "You already guessed that word.")
	require.Len(t, rec.entries, 1)
	assert.Equal(t, 3, rec.entries[0].Attempts)
}

func TestGameLossThenReplay(t *testing.T) {
	rec := &fakeRecorder{}
	out := play(t, &Game{Recorder: rec, MaxAttempts: 2, Mode: "daily"}, "train\nbrace\nmaybe\ny\ncrane\nn\n")

	assert.Contains(t, out, "Attempt 2/2: ")
	assert.Contains(t, out, "You lost! The word was 'crane'.")
	assert.Contains(t, out, "Please enter 'y' or 'n'.")
	assert.Contains(t, out, "You won! The word was 'crane'.")

	require.Len(t, rec.entries, 2)
	assert.Equal(t, "lost", rec.entries[0].Outcome)
	assert.Equal(t, "won", rec.entries[1].Outcome)
	assert.Equal(t, "daily", rec.entries[1].Mode)
	assert.NotEqual(t, rec.entries[0].RoundID, rec.entries[1].RoundID)
}

func TestGameEndOfInput(t *testing.T) {
	rec := &fakeRecorder{}
	out := play(t, &Game{Recorder: rec}, "train\n")
	assert.Contains(t, out, "Attempt 2/6: ")
	assert.Empty(t, rec.entries)

	out = play(t, &Game{Recorder: rec}, "crane\n")
	assert.Contains(t, out, "Play again? (y/n): ")
	assert.NotContains(t, out, "Thanks for playing!")
	assert.Len(t, rec.entries, 1)
}

func TestGameBoard(t *testing.T) {
	out := play(t, &Game{}, "train\ncrane\nn\n")
	assert.Contains(t, out, "Previous guesses:\ntrain\n\nKeyboard:")
	assert.Contains(t, out, "Previous guesses:\ntrain\ncrane\n")
}

func TestGameEmptyBank(t *testing.T) {
	g := &Game{
		In:     strings.NewReader(""),
		Out:    &bytes.Buffer{},
		Picker: game.PickerFunc(func() (string, error) { return "", assert.AnError }),
	}
	assert.ErrorIs(t, g.Run(context.Background()), assert.AnError)
}

func TestGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Game{In: strings.NewReader("crane\n"), Out: &bytes.Buffer{}, Picker: game.Fixed("crane")}
	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
}
