// rotor
package rotor

import (
	"fmt"
	"strings"

	"github.com/ryandancy/enigma-emulator/cipher"
)

// Rotor models one wheel of the machine: a fixed substitution wiring that
// rotates relative to the entry plate, changing which contact a given
// letter position reaches. A reflector is the same wheel with advancement
// disabled and a stricter wiring invariant (see NewReflector); Beta and
// Gamma class wheels carry the thin flag and only fit the fourth slot.
type Rotor struct {
	name           string
	wiring         [cipher.AlphabetSize]int
	inverse        [cipher.AlphabetSize]int
	turnovers      [cipher.AlphabetSize]bool
	ringPos        int
	position       int
	justTurnedOver bool
	thin           bool
	canAdvance     bool
}

// New builds a rotating wheel from a 26-letter wiring string and its
// turnover letters. The wiring must be a full permutation of the alphabet;
// each turnover token must be exactly one letter. Case is ignored.
func New(name, wiring string, turnovers ...string) (*Rotor, error) {
	r := &Rotor{name: name, canAdvance: true}
	if err := r.setWiring(wiring); err != nil {
		return nil, err
	}
	for _, tok := range turnovers {
		runes := []rune(tok)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: %q", cipher.ErrTurnoverToken, tok)
		}
		pos, err := cipher.LetterPos(runes[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", cipher.ErrTurnoverToken, tok)
		}
		r.turnovers[pos] = true
	}
	return r, nil
}

// NewThin builds a Beta/Gamma-class wheel. It sits between the rotating
// chain and the reflector of a four-rotor machine and is never moved by
// the stepping mechanism, so it carries no turnover positions.
func NewThin(name, wiring string) (*Rotor, error) {
	r, err := New(name, wiring)
	if err != nil {
		return nil, err
	}
	r.thin = true
	return r, nil
}

// NewReflector builds the wheel that turns the signal back through the
// chain. On top of the usual wiring checks the permutation must be an
// involution with no fixed point, and the wheel never advances. thin marks
// the narrow reflectors that pair with a fourth wheel.
func NewReflector(name, wiring string, thin bool) (*Rotor, error) {
	r := &Rotor{name: name, thin: thin}
	if err := r.setWiring(wiring); err != nil {
		return nil, err
	}
	for i, out := range r.wiring {
		if out == i || r.wiring[out] != i {
			return nil, fmt.Errorf("%w: %q", cipher.ErrReflectorCipher, name)
		}
	}
	return r, nil
}

func (r *Rotor) setWiring(wiring string) error {
	runes := []rune(wiring)
	if len(runes) != cipher.AlphabetSize {
		return fmt.Errorf("%w: got %d", cipher.ErrCipherLength, len(runes))
	}
	var seen [cipher.AlphabetSize]bool
	for i, ch := range runes {
		pos, err := cipher.LetterPos(ch)
		if err != nil {
			return fmt.Errorf("%w: %q", cipher.ErrCipherNotAlphabetic, ch)
		}
		if seen[pos] {
			return fmt.Errorf("%w: %q repeats", cipher.ErrCipherNotAlphabetic, ch)
		}
		seen[pos] = true
		r.wiring[i] = pos
		r.inverse[pos] = i
	}
	return nil
}

// Name returns the wheel's catalog name.
func (r *Rotor) Name() string { return r.name }

// Wiring returns the wheel's substitution as a 26-letter string.
func (r *Rotor) Wiring() string {
	var b strings.Builder
	for _, out := range r.wiring {
		b.WriteByte(cipher.PosLetter(out))
	}
	return b.String()
}

// Thin reports whether this is a Beta/Gamma-class wheel or thin reflector.
func (r *Rotor) Thin() bool { return r.thin }

// IsReflector reports whether the wheel was built by NewReflector.
func (r *Rotor) IsReflector() bool { return !r.canAdvance }

// Position returns the wheel's current rotational position.
func (r *Rotor) Position() int { return r.position }

// Ring returns the wheel's ring setting.
func (r *Rotor) Ring() int { return r.ringPos }

// JustTurnedOver reports whether the wheel advanced on the last keystroke.
func (r *Rotor) JustTurnedOver() bool { return r.justTurnedOver }

// SetRing sets the ring offset between the wiring and the position
// indicator. Values wrap modulo 26.
func (r *Rotor) SetRing(n int) {
	r.ringPos = mod(n)
}

// SetPosition rotates the wheel directly to a position, as when an
// operator dials in the message key. Values wrap modulo 26.
func (r *Rotor) SetPosition(n int) {
	r.position = mod(n)
}

// offset is the combined rotation the signal sees: the wheel's position
// plus its ring setting.
func (r *Rotor) offset() int {
	return r.position + r.ringPos
}

// Encrypt substitutes letter through the wheel at its current rotation.
// advancing records whether the stepping mechanism moved this wheel on the
// current keystroke; the flag feeds the double-step decision on the next
// keystroke, not this one's substitution. The wheel's position is not
// touched here - stepping is Turnover's job.
func (r *Rotor) Encrypt(letter byte, advancing bool) byte {
	r.justTurnedOver = advancing
	k := r.offset()
	in := int(letter-'A') + k
	return cipher.PosLetter(r.wiring[in%cipher.AlphabetSize] - k)
}

// ReverseEncrypt runs the return-path substitution, the exact algebraic
// inverse of Encrypt at the same rotation.
func (r *Rotor) ReverseEncrypt(letter byte) byte {
	k := r.offset()
	in := int(letter-'A') + k
	return cipher.PosLetter(r.inverse[in%cipher.AlphabetSize] - k)
}

// Turnover advances the wheel one position. Reflectors never advance.
func (r *Rotor) Turnover() {
	if !r.canAdvance {
		return
	}
	r.position = (r.position + 1) % cipher.AlphabetSize
	r.justTurnedOver = true
}

// AtTurnover reports whether the wheel currently sits on one of its
// notches.
func (r *Rotor) AtTurnover() bool { return r.turnovers[r.position] }

// ShouldTurnover decides, against pre-advance state, whether advancing
// this wheel on the current keystroke also advances the next wheel in
// chain. True when the wheel sits on a notch, or - the double-stepping
// anomaly - when this is the first wheel of the chain and the second sits
// on one of its own notches having just turned over, which makes the
// middle wheel of a three-rotor set advance on two consecutive keystrokes.
func (r *Rotor) ShouldTurnover(chain []*Rotor) bool {
	if r.turnovers[r.position] {
		return true
	}
	if len(chain) > 1 && r == chain[0] {
		second := chain[1]
		return second.AtTurnover() && second.justTurnedOver
	}
	return false
}

// Reset zeroes both the ring setting and the rotational position.
func (r *Rotor) Reset() {
	r.ringPos = 0
	r.ResetPosition()
}

// ResetPosition rewinds only the rotational position, preserving the ring
// setting, so a machine can be re-keyed for a fresh message.
func (r *Rotor) ResetPosition() {
	r.position = 0
	r.justTurnedOver = false
}

// Clone returns an independent copy of the wheel, wiring and operating
// state included. Machines clone the wheels handed to Configure so that no
// two machines ever share mutable state.
func (r *Rotor) Clone() *Rotor {
	c := *r
	return &c
}

func (r *Rotor) String() string {
	var notches strings.Builder
	for pos, set := range r.turnovers {
		if set {
			notches.WriteByte(cipher.PosLetter(pos))
		}
	}
	kind := "rotor"
	switch {
	case r.IsReflector():
		kind = "reflector"
	case r.thin:
		kind = "thin rotor"
	}
	return fmt.Sprintf("%s %s[%s] notches=%q pos=%c ring=%c",
		kind, r.name, r.Wiring(), notches.String(),
		cipher.PosLetter(r.position), cipher.PosLetter(r.ringPos))
}

func mod(n int) int {
	n %= cipher.AlphabetSize
	if n < 0 {
		n += cipher.AlphabetSize
	}
	return n
}
