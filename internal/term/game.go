// internal/term/game.go
//
// Interactive console play: prompt, score, show the board, repeat until the
// round ends, then offer another round with the same picker.

package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/results"
	"github.com/robalobadob/wordle-engine/internal/words"
)

var rule = strings.Repeat("-", 40)

// Game runs rounds against a reader and writer.
type Game struct {
	In            io.Reader
	Out           io.Writer
	Render        *Renderer
	Picker        game.Picker
	Mode          string // "normal" | "daily", only used for recording
	MaxAttempts   int    // game.DefaultMaxAttempts when zero
	RejectRepeats bool
	Recorder      results.Recorder // optional
	Now           func() time.Time

	sc *bufio.Scanner
}

// Run plays until the player declines another round, input ends, or ctx is
// cancelled. End of input is not an error.
func (g *Game) Run(ctx context.Context) error {
	if g.Render == nil {
		g.Render = &Renderer{}
	}
	if g.Now == nil {
		g.Now = time.Now
	}
	g.sc = bufio.NewScanner(g.In)

	budget := g.MaxAttempts
	if budget == 0 {
		budget = game.DefaultMaxAttempts
	}
	round, err := game.NewRound(g.Picker, game.WithMaxAttempts(budget))
	if err != nil {
		return err
	}

	for {
		finished, err := g.playRound(ctx, round)
		if err != nil || !finished {
			return err
		}
		g.record(ctx, round)

		again, ok := g.askAgain()
		if !ok {
			return nil
		}
		if !again {
			fmt.Fprintln(g.Out, "Thanks for playing!")
			return nil
		}
		if err := round.Reset(g.Picker); err != nil {
			return err
		}
	}
}

// playRound reports false when input ended before the round finished.
func (g *Game) playRound(ctx context.Context, round *game.Round) (bool, error) {
	fmt.Fprintln(g.Out, "\nWelcome to Wordle! Guess the 5-letter word.")
	fmt.Fprintln(g.Out, g.Render.Legend())
	fmt.Fprintln(g.Out, rule)

	for !round.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprintf(g.Out, "Attempt %d/%d: ", round.Attempts()+1, round.MaxAttempts())
		line, ok := g.readLine()
		if !ok {
			fmt.Fprintln(g.Out)
			return false, nil
		}

		if g.RejectRepeats && round.HasGuessed(line) {
			fmt.Fprintln(g.Out, "You already guessed that word.")
			continue
		}
		_, err := round.Evaluate(line)
		if errors.Is(err, game.ErrInvalidGuess) {
			if utf8.RuneCountInString(words.Normalize(line)) != game.WordLength {
				fmt.Fprintln(g.Out, "Invalid input: Enter exactly 5 letters.")
			} else {
				fmt.Fprintln(g.Out, "Invalid input: Letters only.")
			}
			continue
		}
		if err != nil {
			return false, err
		}
		g.board(round)
	}

	_, out := round.IsOver()
	if out.State == game.Won {
		fmt.Fprintf(g.Out, "You won! The word was '%s'.\n", out.Target)
	} else {
		fmt.Fprintf(g.Out, "You lost! The word was '%s'.\n", out.Target)
	}
	return true, nil
}

func (g *Game) board(round *game.Round) {
	fmt.Fprintln(g.Out, "\nPrevious guesses:")
	for _, a := range round.History() {
		fmt.Fprintln(g.Out, g.Render.Attempt(a))
	}
	fmt.Fprintln(g.Out, "\nKeyboard:")
	fmt.Fprintln(g.Out, g.Render.Keyboard(round.Letters()))
	fmt.Fprintln(g.Out, rule)
}

// askAgain returns ok=false when input ended.
func (g *Game) askAgain() (again, ok bool) {
	for {
		fmt.Fprint(g.Out, "Play again? (y/n): ")
		line, ok := g.readLine()
		if !ok {
			fmt.Fprintln(g.Out)
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, true
		case "n":
			return false, true
		}
		fmt.Fprintln(g.Out, "Please enter 'y' or 'n'.")
	}
}

func (g *Game) readLine() (string, bool) {
	if !g.sc.Scan() {
		return "", false
	}
	return g.sc.Text(), true
}

// record hands the finished round to the Recorder. Failures are logged only.
func (g *Game) record(ctx context.Context, round *game.Round) {
	if g.Recorder == nil {
		return
	}
	e, err := results.FromRound(uuid.NewString(), g.Mode, round, g.Now())
	if err == nil {
		err = g.Recorder.Record(ctx, e)
	}
	if err != nil {
		log.Warn().Err(err).Msg("record result")
	}
}
