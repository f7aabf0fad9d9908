// Package cipher holds the pieces shared by the Enigma cipher elements:
// the 26-letter alphabet arithmetic, the error values raised by the element
// constructors and the machine, and the stage-trace types used to observe
// one pass of the signal path.
package cipher

import (
	"errors"
	"fmt"
)

const (
	// AlphabetSize is the number of contact positions on every wheel.
	AlphabetSize = 26
	// Alphabet lists the letters in position order.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	// ErrNotALetter is returned when a single alphabetic character was
	// expected and something else was supplied.
	ErrNotALetter = errors.New("cipher: not an alphabetic character")

	// ErrCipherLength is returned when a wiring string does not name
	// exactly 26 letters.
	ErrCipherLength = errors.New("cipher: wiring must contain exactly 26 letters")

	// ErrCipherNotAlphabetic is returned when a wiring string contains
	// non-letters or is not a full permutation of the alphabet.
	ErrCipherNotAlphabetic = errors.New("cipher: wiring must be a permutation of the alphabet")

	// ErrTurnoverToken is returned when a turnover token is not exactly
	// one letter.
	ErrTurnoverToken = errors.New("cipher: turnover token must be a single letter")

	// ErrReflectorCipher is returned when a reflector wiring is not an
	// involution, or maps some letter to itself.
	ErrReflectorCipher = errors.New("cipher: reflector wiring must be an involution with no fixed point")

	// ErrRotorCount is returned by Configure when the rotating chain does
	// not hold exactly three wheels.
	ErrRotorCount = errors.New("cipher: a machine takes exactly three rotating rotors")

	// ErrRingCount is returned by Configure when the ring settings do not
	// number three, or four with a fourth wheel installed.
	ErrRingCount = errors.New("cipher: ring settings must number one per wheel")

	// ErrThinRotor is returned by Configure when a thin wheel appears in
	// the rotating chain, or when the fourth slot and the reflector
	// disagree about thinness.
	ErrThinRotor = errors.New("cipher: thin wheels require a four-rotor machine with a thin reflector")

	// ErrNotReflector is returned by Configure when the reflector slot is
	// empty or holds a wheel not built by NewReflector.
	ErrNotReflector = errors.New("cipher: a reflector is required")

	// ErrPlugboardChar is returned when a plugboard entry is not a single
	// alphabetic character.
	ErrPlugboardChar = errors.New("cipher: plugboard entries must be single letters")

	// ErrPlugboardArity is returned by SwapAll when given an odd number of
	// letters.
	ErrPlugboardArity = errors.New("cipher: plugboard swaps must come in pairs")

	// ErrNotConfigured is returned by Encrypt before a successful
	// Configure.
	ErrNotConfigured = errors.New("cipher: machine has not been configured")

	// ErrKeyLength is returned by SetKey when the message key does not
	// name one letter per settable wheel.
	ErrKeyLength = errors.New("cipher: message key must name one letter per wheel")
)

// LetterPos maps a letter to its 0-25 alphabet position, case-insensitively.
func LetterPos(r rune) (int, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNotALetter, r)
}

// PosLetter maps an alphabet position back to its upper-case letter.
// Positions wrap modulo 26, so offset arithmetic can feed it directly.
func PosLetter(pos int) byte {
	pos %= AlphabetSize
	if pos < 0 {
		pos += AlphabetSize
	}
	return Alphabet[pos]
}

// IsLetter reports whether r is a single alphabetic character.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
