/*
Copyright © 2026 Ryan Dancy

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	keepUnknown bool
	groupSize   int
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [text...]",
	Short: "Encrypt a message with the configured machine",
	Long: `Encrypt a message with the configured Enigma machine.  The message is
taken from the trailing arguments if present, otherwise from the input
file (stdin by default).  Letters are case-folded to upper case before
they reach the wheels; anything else is dropped unless --keep-unknown is
given, since the machine has no key for it.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCipher(args, true)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVar(&keepUnknown, "keep-unknown", false, "pass non-alphabetic characters through unchanged")
	encryptCmd.Flags().IntVarP(&groupSize, "group", "g", 0, "emit ciphertext in letter groups of this size (0 disables)")
}

func runCipher(args []string, encrypting bool) {
	m := buildMachine()
	fin, fout := getInputAndOutputFiles(encrypting)
	defer fout.Close()

	text := readMessage(args, fin)
	out, err := m.EncryptText(text, keepUnknown)
	cobra.CheckErr(err)
	if encrypting && groupSize > 0 {
		out = groupLetters(out, groupSize)
	}

	_, err = fout.WriteString(out)
	cobra.CheckErr(err)
	if fout == os.Stdout {
		_, err = fout.WriteString("\n")
		cobra.CheckErr(err)
	}
	log.Debug().Str("key", m.Key()).Int("letters", len(out)).Msg("machine stopped")
}

// groupLetters splits the ciphertext into space-separated groups of n
// letters, the way operators transmitted messages.
func groupLetters(s string, n int) string {
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	return b.String()
}
