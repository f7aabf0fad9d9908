// plugboard
package plugboard

import (
	"fmt"
	"strings"

	"github.com/ryandancy/enigma-emulator/cipher"
)

// Plugboard models the steckerbrett: a patch panel swapping up to thirteen
// disjoint letter pairs, applied once before the signal enters the wheel
// chain and once after it returns. Letters without a patch cable pass
// through unchanged.
type Plugboard struct {
	swaps map[byte]byte
}

// New returns an empty plugboard.
func New() *Plugboard {
	return &Plugboard{swaps: make(map[byte]byte)}
}

// Swap patches letters a and b together. If either letter already carries
// a cable the call is a silent no-op - the first write wins - so that a
// configuration sequence can be replayed without error. Callers wanting
// strict duplicate detection must inspect Swapped first. Non-alphabetic
// input is rejected.
func (p *Plugboard) Swap(a, b rune) error {
	pa, err := cipher.LetterPos(a)
	if err != nil {
		return fmt.Errorf("%w: %q", cipher.ErrPlugboardChar, a)
	}
	pb, err := cipher.LetterPos(b)
	if err != nil {
		return fmt.Errorf("%w: %q", cipher.ErrPlugboardChar, b)
	}
	la, lb := cipher.PosLetter(pa), cipher.PosLetter(pb)
	if _, ok := p.swaps[la]; ok {
		return nil
	}
	if _, ok := p.swaps[lb]; ok {
		return nil
	}
	p.swaps[la] = lb
	p.swaps[lb] = la
	return nil
}

// SwapAll patches consecutive pairs from letters, in order, with Swap's
// first-write-wins behavior per pair. An odd number of letters is
// rejected.
func (p *Plugboard) SwapAll(letters ...rune) error {
	if len(letters)%2 != 0 {
		return fmt.Errorf("%w: got %d letters", cipher.ErrPlugboardArity, len(letters))
	}
	for i := 0; i < len(letters); i += 2 {
		if err := p.Swap(letters[i], letters[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// Encrypt returns the letter's swap partner, or the letter itself when it
// carries no cable.
func (p *Plugboard) Encrypt(letter byte) byte {
	if out, ok := p.swaps[letter]; ok {
		return out
	}
	return letter
}

// Swapped reports whether the letter already carries a cable.
func (p *Plugboard) Swapped(letter byte) bool {
	_, ok := p.swaps[letter]
	return ok
}

// Pairs renders the patched pairs in alphabetical order, e.g. "AB CD".
func (p *Plugboard) Pairs() string {
	var b strings.Builder
	for i := 0; i < cipher.AlphabetSize; i++ {
		la := cipher.PosLetter(i)
		lb, ok := p.swaps[la]
		if !ok || lb <= la {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(la)
		b.WriteByte(lb)
	}
	return b.String()
}

// Reset pulls every cable.
func (p *Plugboard) Reset() {
	p.swaps = make(map[byte]byte)
}

func (p *Plugboard) String() string {
	return fmt.Sprintf("plugboard[%s]", p.Pairs())
}
