// Package main - enigma-emulator reproduces the signal path of a WW2-era
// rotor cipher machine: plugboard, a chain of rotating wheels, a static
// reflector and the same wheels in reverse, one ciphertext letter per
// keystroke, with the double-stepping anomaly of the real mechanism.
package main

import "github.com/ryandancy/enigma-emulator/cmd"

func main() {
	cmd.Execute()
}
