package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryandancy/enigma-emulator/cipher"
)

func TestLetterPos(t *testing.T) {
	for pos := 0; pos < cipher.AlphabetSize; pos++ {
		upper := rune('A' + pos)
		lower := rune('a' + pos)

		got, err := cipher.LetterPos(upper)
		require.NoError(t, err)
		assert.Equal(t, pos, got)

		got, err = cipher.LetterPos(lower)
		require.NoError(t, err)
		assert.Equal(t, pos, got)
	}
}

func TestLetterPos_RejectsNonLetters(t *testing.T) {
	for _, r := range []rune{'1', '!', ' ', '@', 'ß', 'é', 0} {
		_, err := cipher.LetterPos(r)
		assert.ErrorIs(t, err, cipher.ErrNotALetter, "rune %q", r)
	}
}

func TestPosLetter(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want byte
	}{
		{"first", 0, 'A'},
		{"last", 25, 'Z'},
		{"wraps forward", 26, 'A'},
		{"wraps twice", 53, 'B'},
		{"wraps negative", -1, 'Z'},
		{"wraps far negative", -27, 'Z'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cipher.PosLetter(tt.pos))
		})
	}
}

func TestIsLetter(t *testing.T) {
	assert.True(t, cipher.IsLetter('A'))
	assert.True(t, cipher.IsLetter('z'))
	assert.False(t, cipher.IsLetter('0'))
	assert.False(t, cipher.IsLetter(' '))
	assert.False(t, cipher.IsLetter('ä'))
}
