// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Start rounds from a Picker (Reset / NewRound).
//   - Validate and apply guesses (length, alphabetic, round still open).
//   - Score guesses with the two-pass algorithm (Score).
//   - Track per-letter knowledge as a fold over the history.
//   - Track state transitions: playing → won/lost.
//
// A Round is owned by one caller and is not safe for concurrent use.
// Every failing operation leaves the round exactly as it was.
package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle-engine/internal/words"
)

var (
	// ErrInvalidGuess is returned for guesses that are not five ASCII letters.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrRoundClosed is returned when guessing after the round was won or lost.
	ErrRoundClosed = errors.New("round closed")

	// ErrInvalidTarget is returned when a Picker yields an unusable word.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrInvalidMaxAttempts is returned for a guess budget below one.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)

// Letters is the best-known verdict per letter, indexed 'a'..'z'.
type Letters [26]Verdict

// Get returns the status of r, or Unused for anything that is not a–z.
func (l Letters) Get(r rune) Verdict {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return Unused
	}
	return l[r-'a']
}

// Map renders the known letters as a letter → verdict map, omitting Unused.
func (l Letters) Map() map[string]Verdict {
	out := make(map[string]Verdict)
	for i, v := range l {
		if v != Unused {
			out[string(rune('a'+i))] = v
		}
	}
	return out
}

// apply upgrades the letters of one attempt. Statuses only move up the
// precedence order, so Correct is never downgraded. Bytes outside a–z (after
// folding case), positions past WordLength and unknown verdicts are skipped.
func (l *Letters) apply(a Attempt) {
	for i := 0; i < len(a.Guess) && i < WordLength; i++ {
		c := a.Guess[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		v := a.Result[i]
		if c < 'a' || c > 'z' || v > Correct {
			continue
		}
		if v > l[c-'a'] {
			l[c-'a'] = v
		}
	}
}

// FoldLetters recomputes letter knowledge from a history.
func FoldLetters(history []Attempt) Letters {
	var l Letters
	for _, a := range history {
		l.apply(a)
	}
	return l
}

// Round is the state of one play-through from target selection to win/loss.
type Round struct {
	target      string
	maxAttempts int
	history     []Attempt
	letters     Letters
	state       State
}

// Option configures a Round.
type Option func(*Round)

// WithMaxAttempts sets the guess budget. Values below one make NewRound fail.
func WithMaxAttempts(n int) Option {
	return func(r *Round) { r.maxAttempts = n }
}

// NewRound constructs a round and draws its first target from p.
func NewRound(p Picker, opts ...Option) (*Round, error) {
	r := &Round{maxAttempts: DefaultMaxAttempts}
	for _, o := range opts {
		o(r)
	}
	if r.maxAttempts < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxAttempts, r.maxAttempts)
	}
	if err := r.Reset(p); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset draws a fresh target and clears history and letter knowledge.
// On error the round is left untouched.
func (r *Round) Reset(p Picker) error {
	if p == nil {
		return fmt.Errorf("reset: %w", words.ErrEmptyBank)
	}
	t, err := p.PickTarget()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	t = words.Normalize(t)
	if !words.Valid(t) {
		return fmt.Errorf("reset: %w: %q", ErrInvalidTarget, t)
	}
	if r.maxAttempts < 1 {
		r.maxAttempts = DefaultMaxAttempts
	}
	r.target = t
	r.history = nil
	r.letters = Letters{}
	r.state = InProgress
	return nil
}

// Evaluate scores guess against the target and records it.
//
// Validation rules:
//   - Round must still be in progress (ErrRoundClosed).
//   - Guess, after trimming and lowercasing, must be exactly WordLength
//     letters a–z (ErrInvalidGuess).
//
// State transitions:
//   - All positions Correct → Won.
//   - Else budget exhausted → Lost.
func (r *Round) Evaluate(guess string) (Result, error) {
	if r.state.Terminal() {
		return Result{}, fmt.Errorf("%w: round already %s", ErrRoundClosed, r.state)
	}
	if r.target == "" {
		return Result{}, fmt.Errorf("%w: round not started", ErrRoundClosed)
	}
	g := words.Normalize(guess)
	if len(g) != WordLength {
		return Result{}, fmt.Errorf("%w: %q must be %d letters", ErrInvalidGuess, guess, WordLength)
	}
	if !words.Valid(g) {
		return Result{}, fmt.Errorf("%w: %q must contain letters only", ErrInvalidGuess, guess)
	}

	res := Score(r.target, g)
	a := Attempt{Guess: g, Result: res}
	r.letters.apply(a)
	r.history = append(r.history, a)

	switch {
	case res.Solved():
		r.state = Won
	case len(r.history) >= r.maxAttempts:
		r.state = Lost
	}
	return res, nil
}

// Score compares guess with target using the two-pass algorithm.
// Both must be WordLength lowercase letters.
//
// Pass 1 marks exact matches Correct and removes those target letters from a
// scratch copy. Pass 2 marks each remaining guess letter Present if an unused
// copy is still in the scratch (consuming the first one), otherwise Absent.
// A letter is therefore never reported more often than the target holds it.
func Score(target, guess string) Result {
	var res Result
	var scratch [WordLength]byte
	copy(scratch[:], target)

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			res[i] = Correct
			scratch[i] = 0
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == Correct {
			continue
		}
		res[i] = Absent
		for j := range scratch {
			if scratch[j] == guess[i] {
				res[i] = Present
				scratch[j] = 0
				break
			}
		}
	}
	return res
}

// IsOver reports whether the round has ended and how.
func (r *Round) IsOver() (bool, Outcome) {
	if !r.state.Terminal() {
		return false, Outcome{State: InProgress}
	}
	return true, Outcome{State: r.state, Target: r.target}
}

// State returns the current state.
func (r *Round) State() State { return r.state }

// RemainingAttempts is the guess budget left; never negative.
func (r *Round) RemainingAttempts() int {
	if n := r.maxAttempts - len(r.history); n > 0 {
		return n
	}
	return 0
}

// MaxAttempts returns the round's guess budget.
func (r *Round) MaxAttempts() int { return r.maxAttempts }

// Attempts returns the number of guesses made so far.
func (r *Round) Attempts() int { return len(r.history) }

// LetterStatus returns the best verdict seen for letter, or Unused.
func (r *Round) LetterStatus(letter rune) Verdict { return r.letters.Get(letter) }

// Letters returns a copy of the letter knowledge.
func (r *Round) Letters() Letters { return r.letters }

// History returns a copy of the attempts in order.
func (r *Round) History() []Attempt {
	return append([]Attempt(nil), r.history...)
}

// HasGuessed reports whether word was already submitted this round.
func (r *Round) HasGuessed(word string) bool {
	w := words.Normalize(word)
	for _, a := range r.history {
		if a.Guess == w {
			return true
		}
	}
	return false
}
