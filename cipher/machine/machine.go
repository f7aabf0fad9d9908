// Package machine wires the plugboard, the rotating wheel chain, the
// optional thin fourth wheel and the reflector into the full bidirectional
// Enigma signal path, and owns the stepping state machine including the
// double-stepping anomaly.
package machine

import (
	"fmt"
	"strings"

	"github.com/ryandancy/enigma-emulator/cipher"
	"github.com/ryandancy/enigma-emulator/cipher/plugboard"
	"github.com/ryandancy/enigma-emulator/cipher/rotor"
)

// Settings names a complete wheel order for Configure. Rotors is the
// rotating chain with the fast wheel first (the wheel that steps on every
// keystroke). Rings holds one ring setting per rotating wheel, plus a
// fourth value when a Fourth wheel is installed; a nil Rings means all
// zero. Plugboard lists two-letter pairs such as "AB". Fourth, when
// present, must be a thin wheel and Reflector a thin reflector.
type Settings struct {
	Rotors    []*rotor.Rotor
	Rings     []int
	Reflector *rotor.Rotor
	Plugboard []string
	Fourth    *rotor.Rotor
}

// Machine is one Enigma. It exclusively owns its wheels and plugboard
// (Configure clones whatever it is handed), so distinct machines can be
// driven concurrently; a single machine is not safe for concurrent use.
type Machine struct {
	rotors     [3]*rotor.Rotor
	fourth     *rotor.Rotor
	reflector  *rotor.Rotor
	plugboard  *plugboard.Plugboard
	sink       cipher.StageSink
	configured bool
}

// New returns an unconfigured machine. Encrypt fails until Configure
// succeeds.
func New() *Machine {
	return &Machine{
		plugboard: plugboard.New(),
		sink:      cipher.NopSink{},
	}
}

// SetSink installs an observer for the per-stage signal events. A nil sink
// restores the discarding default.
func (m *Machine) SetSink(s cipher.StageSink) {
	if s == nil {
		s = cipher.NopSink{}
	}
	m.sink = s
}

// Configure validates and installs a complete wheel order. It is
// all-or-nothing: on error the machine keeps its previous configuration
// (or stays unconfigured). The installed wheels are clones of those in s,
// reset to position zero with the ring settings applied, and the plugboard
// is rebuilt from scratch.
func (m *Machine) Configure(s Settings) error {
	if len(s.Rotors) != 3 {
		return fmt.Errorf("%w: got %d", cipher.ErrRotorCount, len(s.Rotors))
	}
	for i, r := range s.Rotors {
		if r == nil {
			return fmt.Errorf("%w: slot %d is empty", cipher.ErrRotorCount, i)
		}
		if r.Thin() || r.IsReflector() {
			return fmt.Errorf("%w: %s in rotating slot %d", cipher.ErrThinRotor, r.Name(), i)
		}
	}
	if s.Reflector == nil || !s.Reflector.IsReflector() {
		return cipher.ErrNotReflector
	}
	if s.Fourth != nil {
		if !s.Fourth.Thin() || s.Fourth.IsReflector() {
			return fmt.Errorf("%w: %s in the fourth slot", cipher.ErrThinRotor, s.Fourth.Name())
		}
		if !s.Reflector.Thin() {
			return fmt.Errorf("%w: reflector %s is not thin", cipher.ErrThinRotor, s.Reflector.Name())
		}
	} else if s.Reflector.Thin() {
		return fmt.Errorf("%w: thin reflector %s without a fourth wheel", cipher.ErrThinRotor, s.Reflector.Name())
	}
	wheels := 3
	if s.Fourth != nil {
		wheels = 4
	}
	rings := s.Rings
	if rings == nil {
		rings = make([]int, wheels)
	}
	if len(rings) != wheels {
		return fmt.Errorf("%w: %d settings for %d wheels", cipher.ErrRingCount, len(rings), wheels)
	}

	pb := plugboard.New()
	for _, pair := range s.Plugboard {
		runes := []rune(pair)
		if len(runes) != 2 {
			return fmt.Errorf("%w: pair %q", cipher.ErrPlugboardChar, pair)
		}
		if err := pb.Swap(runes[0], runes[1]); err != nil {
			return err
		}
	}

	// Validation is done; from here on the new configuration is installed.
	for i, r := range s.Rotors {
		c := r.Clone()
		c.Reset()
		c.SetRing(rings[i])
		m.rotors[i] = c
	}
	if s.Fourth != nil {
		c := s.Fourth.Clone()
		c.Reset()
		c.SetRing(rings[3])
		m.fourth = c
	} else {
		m.fourth = nil
	}
	m.reflector = s.Reflector.Clone()
	m.plugboard = pb
	m.configured = true
	return nil
}

// SetKey dials the message key: one letter per wheel, fast wheel first,
// the fourth wheel's letter last when one is installed. Ring settings and
// the plugboard are untouched.
func (m *Machine) SetKey(key string) error {
	if !m.configured {
		return cipher.ErrNotConfigured
	}
	runes := []rune(key)
	wheels := 3
	if m.fourth != nil {
		wheels = 4
	}
	if len(runes) != wheels {
		return fmt.Errorf("%w: %d letters for %d wheels", cipher.ErrKeyLength, len(runes), wheels)
	}
	positions := make([]int, wheels)
	for i, ch := range runes {
		pos, err := cipher.LetterPos(ch)
		if err != nil {
			return err
		}
		positions[i] = pos
	}
	for i, r := range m.rotors {
		r.ResetPosition()
		r.SetPosition(positions[i])
	}
	if m.fourth != nil {
		m.fourth.ResetPosition()
		m.fourth.SetPosition(positions[3])
	}
	return nil
}

// Key returns the current window letters, fast wheel first, the fourth
// wheel last when installed.
func (m *Machine) Key() string {
	var b strings.Builder
	for _, r := range m.rotors {
		if r == nil {
			return ""
		}
		b.WriteByte(cipher.PosLetter(r.Position()))
	}
	if m.fourth != nil {
		b.WriteByte(cipher.PosLetter(m.fourth.Position()))
	}
	return b.String()
}

// Configured reports whether Configure has succeeded.
func (m *Machine) Configured() bool { return m.configured }

// Reset rewinds the rotational position of every rotating wheel, leaving
// ring settings and the plugboard alone, so the same daily key can encrypt
// a fresh message.
func (m *Machine) Reset() {
	for _, r := range m.rotors {
		if r != nil {
			r.ResetPosition()
		}
	}
}

// step computes and applies this keystroke's wheel advances. Phase one
// walks the chain against pre-advance state: the fast wheel always
// advances, and each later wheel advances iff its predecessor advances and
// signals a turnover (notch, or the double-step clause). Phase two applies
// every advance at once, so no wheel's decision reads another's
// mid-keystroke mutation.
func (m *Machine) step() [3]bool {
	var advance [3]bool
	chain := m.rotors[:]
	advance[0] = true
	advance[1] = m.rotors[0].ShouldTurnover(chain)
	advance[2] = advance[1] && m.rotors[1].ShouldTurnover(chain)
	for i, a := range advance {
		if a {
			m.rotors[i].Turnover()
		}
	}
	return advance
}

// EncryptLetter runs one keystroke: the wheels step, then the letter runs
// plugboard -> chain -> (fourth) -> reflector -> (fourth) -> chain in
// reverse -> plugboard. Case-insensitive; non-alphabetic input is an
// error. The reciprocal property means the same call decrypts.
func (m *Machine) EncryptLetter(ch rune) (byte, error) {
	if !m.configured {
		return 0, cipher.ErrNotConfigured
	}
	pos, err := cipher.LetterPos(ch)
	if err != nil {
		return 0, err
	}
	letter := cipher.PosLetter(pos)

	advance := m.step()

	out := m.plugboard.Encrypt(letter)
	m.emit(cipher.StagePlugboard, -1, letter, out, m.plugboard.Pairs(), 0)
	letter = out

	for i, r := range m.rotors {
		out = r.Encrypt(letter, advance[i])
		m.emit(cipher.StageRotor, i, letter, out, r.Wiring(), r.Position())
		letter = out
	}
	if m.fourth != nil {
		out = m.fourth.Encrypt(letter, false)
		m.emit(cipher.StageFourth, -1, letter, out, m.fourth.Wiring(), m.fourth.Position())
		letter = out
	}

	out = m.reflector.Encrypt(letter, false)
	m.emit(cipher.StageReflector, -1, letter, out, m.reflector.Wiring(), 0)
	letter = out

	if m.fourth != nil {
		out = m.fourth.ReverseEncrypt(letter)
		m.emit(cipher.StageFourthBack, -1, letter, out, m.fourth.Wiring(), m.fourth.Position())
		letter = out
	}
	for i := len(m.rotors) - 1; i >= 0; i-- {
		r := m.rotors[i]
		out = r.ReverseEncrypt(letter)
		m.emit(cipher.StageRotorBack, i, letter, out, r.Wiring(), r.Position())
		letter = out
	}

	out = m.plugboard.Encrypt(letter)
	m.emit(cipher.StagePlugboardBack, -1, letter, out, m.plugboard.Pairs(), 0)
	return out, nil
}

// EncryptText maps EncryptLetter over text. Non-alphabetic runes never
// reach the wheels: they are dropped, or copied through unchanged when
// keepUnknown is set.
func (m *Machine) EncryptText(text string, keepUnknown bool) (string, error) {
	var b strings.Builder
	for _, ch := range text {
		if !cipher.IsLetter(ch) {
			if keepUnknown {
				b.WriteRune(ch)
			}
			continue
		}
		out, err := m.EncryptLetter(ch)
		if err != nil {
			return "", err
		}
		b.WriteByte(out)
	}
	return b.String(), nil
}

func (m *Machine) emit(stage cipher.Stage, idx int, in, out byte, wiring string, pos int) {
	m.sink.OnStage(cipher.StageEvent{
		Stage:    stage,
		Rotor:    idx,
		In:       in,
		Out:      out,
		Wiring:   wiring,
		Position: pos,
	})
}
