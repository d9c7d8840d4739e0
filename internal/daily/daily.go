// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
//
// The index for a date is HMAC-SHA256(salt, "YYYY-MM-DD") truncated to its
// first 8 bytes (big endian) modulo the vocabulary size. The same salt, date
// and word list always produce the same target, so every player gets the
// same daily word without any shared state.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle-engine/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker selects the day's word from Bank. It satisfies game.Picker.
type Picker struct {
	Bank *words.Bank
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// New returns a Picker for bank using salt.
func New(bank *words.Bank, salt string) *Picker {
	return &Picker{Bank: bank, Salt: salt, Now: time.Now}
}

// PickTarget returns the word for the current date.
func (p *Picker) PickTarget() (string, error) {
	w, _, err := p.Today()
	return w, err
}

// Today returns the current date's word and its date key.
func (p *Picker) Today() (word string, date string, err error) {
	if p == nil || p.Bank.Len() == 0 {
		return "", "", words.ErrEmptyBank
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	t := now()
	idx := WordIndex(t, p.Salt, p.Bank.Len())
	return p.Bank.At(idx), DateKey(t), nil
}
