package rotor

import (
	"fmt"
	"strings"
)

// Wiring is an immutable wheel template from the historical catalog: the
// substitution alphabet and notch letters of a physical wheel, which never
// change over its lifetime. Templates carry no operating state; Build
// mints a fresh wheel on every call so that machines never share wheels.
type Wiring struct {
	Name      string
	Cipher    string
	Turnovers string // one letter per notch; empty for thin wheels and reflectors
	Thin      bool
	Reflect   bool
}

// The Wehrmacht/Kriegsmarine wheel set. Wheels I-V carry a single notch,
// the naval wheels VI-VIII two. Beta and Gamma only fit the fourth slot of
// an M4 and pair with the thin B/C reflectors.
var catalog = []Wiring{
	{Name: "I", Cipher: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Turnovers: "Q"},
	{Name: "II", Cipher: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Turnovers: "E"},
	{Name: "III", Cipher: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Turnovers: "V"},
	{Name: "IV", Cipher: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Turnovers: "J"},
	{Name: "V", Cipher: "VZBRGITYUPSDNHLXAWMJQOFECK", Turnovers: "Z"},
	{Name: "VI", Cipher: "JPGVOUMFYQBENHZRDKASXLICTW", Turnovers: "ZM"},
	{Name: "VII", Cipher: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Turnovers: "ZM"},
	{Name: "VIII", Cipher: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Turnovers: "ZM"},
	{Name: "Beta", Cipher: "LEYJVCNIXWPBQMDRTAKZGFUHOS", Thin: true},
	{Name: "Gamma", Cipher: "FSOKANUERHMBTIYCWLQPZXVGJD", Thin: true},
	{Name: "A", Cipher: "EJMZALYXVBWFCRQUONTSPIKHGD", Reflect: true},
	{Name: "B", Cipher: "YRUHQSLDPXNGOKMIEBFZCWVJAT", Reflect: true},
	{Name: "C", Cipher: "FVPJIAOYEDRZXWGCTKUQSBNMHL", Reflect: true},
	{Name: "BThin", Cipher: "ENKQAUYWJICOPBLMDXZVFTHRGS", Reflect: true, Thin: true},
	{Name: "CThin", Cipher: "RDOBJNTKVEHMLFCWZAXGYIPSUQ", Reflect: true, Thin: true},
}

// Catalog returns the full wheel catalog.
func Catalog() []Wiring {
	out := make([]Wiring, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by name, case-insensitively.
func Lookup(name string) (Wiring, bool) {
	for _, w := range catalog {
		if strings.EqualFold(w.Name, name) {
			return w, true
		}
	}
	return Wiring{}, false
}

// Build mints a fresh wheel from the template: a reflector for Reflect
// entries, a fourth-slot wheel for thin entries, a rotating rotor
// otherwise.
func (w Wiring) Build() (*Rotor, error) {
	switch {
	case w.Reflect:
		return NewReflector(w.Name, w.Cipher, w.Thin)
	case w.Thin:
		return NewThin(w.Name, w.Cipher)
	default:
		tokens := make([]string, 0, len(w.Turnovers))
		for _, ch := range w.Turnovers {
			tokens = append(tokens, string(ch))
		}
		return New(w.Name, w.Cipher, tokens...)
	}
}

// MustBuild is Build for the static catalog, panicking on a malformed
// template. Intended for wiring up known-good wheels at startup.
func (w Wiring) MustBuild() *Rotor {
	r, err := w.Build()
	if err != nil {
		panic(fmt.Sprintf("rotor: bad catalog wiring %s: %v", w.Name, err))
	}
	return r
}
