// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent), plus
//     Unused for letters that have not been evaluated yet.
//   - Result:  the five verdicts for one guess.
//   - Attempt: one (guess, result) pair in a round's history.
//   - State / Outcome: where a round stands.

package game

import "fmt"

// WordLength is the number of letters in a guess.
const WordLength = 5

// DefaultMaxAttempts is the guess budget used when none is configured.
const DefaultMaxAttempts = 6

// Verdict classifies one guessed letter against the target.
// Values are ordered by precedence: Unused < Absent < Present < Correct.
type Verdict uint8

const (
	Unused  Verdict = iota // letter never evaluated this round
	Absent                 // letter not in the target (or all copies used)
	Present                // letter in the target at another position
	Correct                // letter in the target at this position
)

// String returns the lowercase name used by render surfaces.
func (v Verdict) String() string {
	switch v {
	case Unused:
		return "unused"
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("verdict(%d)", uint8(v))
}

// MarshalText encodes v as its name so JSON maps and arrays read naturally.
func (v Verdict) MarshalText() ([]byte, error) {
	if v > Correct {
		return nil, fmt.Errorf("game: unknown verdict %d", uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (v *Verdict) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unused":
		*v = Unused
	case "absent":
		*v = Absent
	case "present":
		*v = Present
	case "correct":
		*v = Correct
	default:
		return fmt.Errorf("game: unknown verdict %q", b)
	}
	return nil
}

// Result holds one verdict per guessed position. Arrays copy by value, so a
// Result handed out can never be changed through the round.
type Result [WordLength]Verdict

// Solved reports whether every position is Correct.
func (r Result) Solved() bool {
	for _, v := range r {
		if v != Correct {
			return false
		}
	}
	return true
}

// Attempt is one entry of a round's history.
type Attempt struct {
	Guess  string `json:"guess"`
	Result Result `json:"marks"`
}

// State is the round's position in its state machine.
type State uint8

const (
	InProgress State = iota
	Won
	Lost
)

// String returns the wire name of the state.
func (s State) String() string {
	switch s {
	case InProgress:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// MarshalText encodes s as its wire name.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool { return s == Won || s == Lost }

// Outcome describes how a round ended. For a round still in progress the
// State is InProgress and Target is empty (undetermined).
type Outcome struct {
	State  State
	Target string
}

// Undetermined reports whether the round has not ended yet.
func (o Outcome) Undetermined() bool { return o.State == InProgress }

// Picker supplies target words. *words.Bank and daily.Picker implement it;
// tests pass deterministic stubs.
type Picker interface {
	PickTarget() (string, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func() (string, error)

// PickTarget calls f.
func (f PickerFunc) PickTarget() (string, error) { return f() }

// Fixed returns a Picker that always yields word.
func Fixed(word string) Picker {
	return PickerFunc(func() (string, error) { return word, nil })
}
