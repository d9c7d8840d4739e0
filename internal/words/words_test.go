package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBank(t *testing.T) {
	tests := []struct {
		name    string
		list    []string
		want    []string
		wantErr bool
	}{
		{name: "normalizes case and space", list: []string{" Crane", "TRAIN "}, want: []string{"crane", "train"}},
		{name: "collapses duplicates", list: []string{"crane", "CRANE", "brace"}, want: []string{"crane", "brace"}},
		{name: "empty list is allowed", list: nil, want: []string{}},
		{name: "too short rejects bank", list: []string{"crane", "cat"}, wantErr: true},
		{name: "too long rejects bank", list: []string{"cranes"}, wantErr: true},
		{name: "non alphabetic rejects bank", list: []string{"cr4ne"}, wantErr: true},
		{name: "non ascii rejects bank", list: []string{"crané"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBank(tt.list)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidWord))
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Words())
			assert.Equal(t, len(tt.want), b.Len())
		})
	}
}

func TestPickTarget(t *testing.T) {
	t.Run("empty bank", func(t *testing.T) {
		b, err := NewBank(nil)
		require.NoError(t, err)

		_, err = b.PickTarget()
		assert.ErrorIs(t, err, ErrEmptyBank)
	})

	t.Run("nil bank", func(t *testing.T) {
		var b *Bank
		_, err := b.PickTarget()
		assert.ErrorIs(t, err, ErrEmptyBank)
	})

	t.Run("uses injected random source", func(t *testing.T) {
		b, err := NewBank([]string{"apple", "crane", "train"}, WithRandom(func(n int) int { return n - 1 }))
		require.NoError(t, err)

		w, err := b.PickTarget()
		require.NoError(t, err)
		assert.Equal(t, "train", w)
	})

	t.Run("does not mutate bank", func(t *testing.T) {
		b, err := NewBank([]string{"apple", "crane", "train"})
		require.NoError(t, err)
		before := b.Words()

		for i := 0; i < 50; i++ {
			w, err := b.PickTarget()
			require.NoError(t, err)
			assert.Contains(t, before, w)
		}
		assert.Equal(t, before, b.Words())
	})
}

func TestDefault(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	assert.Greater(t, b.Len(), 50)
	for _, w := range b.Words() {
		assert.True(t, Valid(w), w)
	}
	assert.Contains(t, b.Words(), "crane")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("# header\nCrane\n\n  brace\n"), 0o644))
	b, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "brace"}, b.Words())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("crane\nnope\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
