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
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ryandancy/enigma-emulator/cipher/rotor"
)

// wheelsCmd represents the wheels command
var wheelsCmd = &cobra.Command{
	Use:   "wheels",
	Short: "List the historical wheel catalog",
	Long: `List every wheel this emulator knows: the Wehrmacht/Kriegsmarine rotors
I-VIII with their notch letters, the thin Beta and Gamma wheels for the
fourth slot, and the reflectors (A, B, C plus the thin B/C that pair with
a fourth wheel).`,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 2, 8, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tWIRING\tNOTCHES")
		for _, entry := range rotor.Catalog() {
			kind := "rotor"
			switch {
			case entry.Reflect && entry.Thin:
				kind = "thin reflector"
			case entry.Reflect:
				kind = "reflector"
			case entry.Thin:
				kind = "thin rotor"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Name, kind, entry.Cipher, entry.Turnovers)
		}
		cobra.CheckErr(w.Flush())
	},
}

func init() {
	rootCmd.AddCommand(wheelsCmd)
}
