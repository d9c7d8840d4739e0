// internal/term/render.go
//
// Terminal rendering for guesses and the keyboard.
// Colour is ANSI and only emitted when the output is a terminal; on Windows
// the writer is wrapped by go-colorable so the escapes still work.

package term

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle-engine/internal/game"
)

const (
	reset  = "\033[0m"
	green  = "\033[1;32m" // correct spot
	yellow = "\033[1;33m" // wrong spot
	gray   = "\033[1;90m" // not in word
)

// Renderer formats rounds for a terminal.
type Renderer struct {
	Color bool
}

// Stdout returns a writer for os.Stdout and a Renderer that colours only
// when stdout is a terminal.
func Stdout() (io.Writer, *Renderer) {
	return ForFile(os.Stdout)
}

// ForFile is Stdout for an arbitrary file.
func ForFile(f *os.File) (io.Writer, *Renderer) {
	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if !tty {
		return f, &Renderer{}
	}
	return colorable.NewColorable(f), &Renderer{Color: true}
}

func colorFor(v game.Verdict) string {
	switch v {
	case game.Correct:
		return green
	case game.Present:
		return yellow
	case game.Absent:
		return gray
	}
	return ""
}

func (r *Renderer) paint(s string, v game.Verdict) string {
	c := colorFor(v)
	if !r.Color || c == "" {
		return s
	}
	return c + s + reset
}

// Attempt renders one scored guess, one coloured letter per position.
func (r *Renderer) Attempt(a game.Attempt) string {
	var b strings.Builder
	for i, ch := range a.Guess {
		if i >= game.WordLength {
			break
		}
		b.WriteString(r.paint(string(ch), a.Result[i]))
	}
	return b.String()
}

// Keyboard renders a..z coloured by status. Letters known absent are left out.
func (r *Renderer) Keyboard(l game.Letters) string {
	keys := make([]string, 0, 26)
	for ch := 'a'; ch <= 'z'; ch++ {
		v := l.Get(ch)
		if v == game.Absent {
			continue
		}
		keys = append(keys, r.paint(string(ch), v))
	}
	return strings.Join(keys, " ")
}

// Legend explains the colours.
func (r *Renderer) Legend() string {
	return r.paint("Green", game.Correct) + ": correct spot\n" +
		r.paint("Yellow", game.Present) + ": wrong spot\n" +
		r.paint("Gray", game.Absent) + ": not in word"
}
