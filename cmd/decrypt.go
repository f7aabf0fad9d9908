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
	"github.com/spf13/cobra"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [text...]",
	Short: "Decrypt a message with the configured machine",
	Long: `Decrypt a message with the configured Enigma machine.  The cipher is
reciprocal, so this is the same signal pass as encrypt: supply the wheel
order, ring settings, plugboard and message key the message was encrypted
with and the plaintext falls out.  Group separators from the encrypted
form are dropped on the way in.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCipher(args, false)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().BoolVar(&keepUnknown, "keep-unknown", false, "pass non-alphabetic characters through unchanged")
}
