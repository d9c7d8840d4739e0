// internal/words/words.go
//
// Vocabulary management for the game engine.
//
// Responsibilities:
//   - Build an immutable Bank of lowercase five-letter words.
//   - Pick a target word uniformly at random (crypto/rand unless injected).
//   - Load vocabularies from files or the embedded default.
//
// Validation policy:
//   Construction is fail-fast. Every entry is trimmed and lowercased; if any
//   entry is then not exactly five ASCII letters the whole bank is rejected
//   with ErrInvalidWord. Duplicates are collapsed, first occurrence wins, and
//   insertion order is kept so index-based pickers stay deterministic.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle-engine/assets"
)

// Length is the number of letters in every word.
const Length = 5

var (
	// ErrEmptyBank is returned when a target is requested from a bank with no words.
	ErrEmptyBank = errors.New("words: bank is empty")

	// ErrInvalidWord is returned when a vocabulary entry is not five ASCII letters.
	ErrInvalidWord = errors.New("words: invalid word")
)

// Bank is an immutable vocabulary. The zero value is an empty bank.
type Bank struct {
	words []string
	set   map[string]struct{}
	intn  func(n int) int
}

// Option configures a Bank.
type Option func(*Bank)

// WithRandom replaces the random source used by PickTarget.
// intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(b *Bank) {
		if intn != nil {
			b.intn = intn
		}
	}
}

// NewBank validates and normalizes list into a Bank.
// An empty list is accepted; PickTarget then fails with ErrEmptyBank.
func NewBank(list []string, opts ...Option) (*Bank, error) {
	b := &Bank{
		words: make([]string, 0, len(list)),
		set:   make(map[string]struct{}, len(list)),
		intn:  cryptoIntn,
	}
	for i, raw := range list {
		w := Normalize(raw)
		if !Valid(w) {
			return nil, fmt.Errorf("%w: entry %d %q", ErrInvalidWord, i+1, raw)
		}
		if _, dup := b.set[w]; dup {
			continue
		}
		b.set[w] = struct{}{}
		b.words = append(b.words, w)
	}
	for _, o := range opts {
		o(b)
	}
	return b, nil
}

// Default returns a Bank holding the embedded vocabulary.
func Default(opts ...Option) (*Bank, error) {
	list, err := assets.DefaultWords()
	if err != nil {
		return nil, fmt.Errorf("read embedded words: %w", err)
	}
	return NewBank(list, opts...)
}

// Load reads one word per line from path.
// Blank lines and lines starting with '#' are skipped.
func Load(path string, opts ...Option) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var list []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	b, err := NewBank(list, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// PickTarget returns one word chosen uniformly at random.
// It never mutates the bank.
func (b *Bank) PickTarget() (string, error) {
	if b == nil || len(b.words) == 0 {
		return "", ErrEmptyBank
	}
	intn := b.intn
	if intn == nil {
		intn = cryptoIntn
	}
	return b.words[intn(len(b.words))], nil
}

// Words returns a copy of the vocabulary in insertion order.
func (b *Bank) Words() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.words...)
}

// Len reports the number of distinct words.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.words)
}

// At returns the i-th word in insertion order.
func (b *Bank) At(i int) string { return b.words[i] }

// Normalize trims surrounding whitespace and lowercases w.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Valid reports whether w is exactly Length lowercase ASCII letters.
func Valid(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// cryptoIntn draws from crypto/rand.
func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS source is unavailable.
		panic(fmt.Sprintf("words: crypto/rand: %v", err))
	}
	return int(v.Int64())
}
