package plugboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryandancy/enigma-emulator/cipher"
	"github.com/ryandancy/enigma-emulator/cipher/plugboard"
)

func TestSwap(t *testing.T) {
	p := plugboard.New()
	require.NoError(t, p.Swap('A', 'B'))

	assert.Equal(t, byte('B'), p.Encrypt('A'))
	assert.Equal(t, byte('A'), p.Encrypt('B'))
	assert.Equal(t, byte('C'), p.Encrypt('C'), "unpatched letters pass through")
}

func TestSwap_Idempotent(t *testing.T) {
	p := plugboard.New()
	require.NoError(t, p.Swap('A', 'B'))
	require.NoError(t, p.Swap('A', 'B'))

	assert.Equal(t, "AB", p.Pairs(), "no duplication, no error")
}

func TestSwap_FirstWriteWins(t *testing.T) {
	p := plugboard.New()
	require.NoError(t, p.Swap('A', 'B'))
	require.NoError(t, p.Swap('A', 'C'), "second cable on A is a silent no-op")

	assert.Equal(t, "AB", p.Pairs())
	assert.False(t, p.Swapped('C'))
}

func TestSwap_CaseInsensitive(t *testing.T) {
	p := plugboard.New()
	require.NoError(t, p.Swap('a', 'b'))
	assert.Equal(t, byte('B'), p.Encrypt('A'))
}

func TestSwap_RejectsNonLetters(t *testing.T) {
	p := plugboard.New()
	assert.ErrorIs(t, p.Swap('1', 'A'), cipher.ErrPlugboardChar)
	assert.ErrorIs(t, p.Swap('A', '!'), cipher.ErrPlugboardChar)
	assert.False(t, p.Swapped('A'), "failed swap leaves nothing behind")
}

func TestSwapAll(t *testing.T) {
	p := plugboard.New()
	require.NoError(t, p.SwapAll('A', 'B', 'C', 'D'))
	assert.Equal(t, "AB CD", p.Pairs())
}

func TestSwapAll_OddArity(t *testing.T) {
	p := plugboard.New()
	assert.ErrorIs(t, p.SwapAll('A', 'B', 'C'), cipher.ErrPlugboardArity)
}

func TestSwapAll_LaterConflictingPairIsIgnored(t *testing.T) {
	p := plugboard.New()
	require.NoError(t, p.SwapAll('A', 'B', 'B', 'C'))
	assert.Equal(t, "AB", p.Pairs())
}

func TestReset(t *testing.T) {
	p := plugboard.New()
	require.NoError(t, p.SwapAll('A', 'B', 'C', 'D'))
	p.Reset()

	assert.Equal(t, "", p.Pairs())
	assert.Equal(t, byte('A'), p.Encrypt('A'))
}
