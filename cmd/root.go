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
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/ryandancy/enigma-emulator/cipher/machine"
	"github.com/ryandancy/enigma-emulator/cipher/rotor"
)

var (
	cfgFile        string
	rotorNames     []string
	ringSettings   []int
	reflectorName  string
	fourthName     string
	plugboardPairs []string
	messageKey     string
	traceStages    bool
	verbose        bool
	inputFileName  string
	outputFileName string
	log            zerolog.Logger

	Version = "dev"
)

const encryptedSuffix = ".enigma"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigma-emulator",
	Short: "A historically faithful Enigma machine emulator",
	Long: `enigma-emulator reproduces the signal path of the German service Enigma:
plugboard, three rotating wheels, an optional thin fourth wheel and a
reflector, with the double-stepping anomaly of the real stepping mechanism.
Because the machine is reciprocal, decryption is encryption with the same
wheel order, ring settings, plugboard and message key.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma-emulator.yaml)")
	rootCmd.PersistentFlags().StringSliceVarP(&rotorNames, "rotors", "r", []string{"III", "II", "I"}, "rotating wheel order, fast wheel first")
	rootCmd.PersistentFlags().IntSliceVar(&ringSettings, "rings", nil, "ring settings, 0-25, one per wheel (default all 0)")
	rootCmd.PersistentFlags().StringVarP(&reflectorName, "reflector", "u", "B", "reflector to install")
	rootCmd.PersistentFlags().StringVar(&fourthName, "fourth", "", "thin fourth wheel (Beta or Gamma) for a four-rotor machine")
	rootCmd.PersistentFlags().StringSliceVarP(&plugboardPairs, "plugboard", "p", nil, "plugboard pairs, e.g. AB,CD")
	rootCmd.PersistentFlags().StringVarP(&messageKey, "key", "k", "", "message key: one letter per wheel (prompted when omitted)")
	rootCmd.PersistentFlags().BoolVar(&traceStages, "trace", false, "log every stage of the signal path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "name of the file to encrypt/decrypt")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "name of the file receiving the result")

	cobra.CheckErr(viper.BindPFlag("rotors", rootCmd.PersistentFlags().Lookup("rotors")))
	cobra.CheckErr(viper.BindPFlag("rings", rootCmd.PersistentFlags().Lookup("rings")))
	cobra.CheckErr(viper.BindPFlag("reflector", rootCmd.PersistentFlags().Lookup("reflector")))
	cobra.CheckErr(viper.BindPFlag("fourth", rootCmd.PersistentFlags().Lookup("fourth")))
	cobra.CheckErr(viper.BindPFlag("plugboard", rootCmd.PersistentFlags().Lookup("plugboard")))
	cobra.CheckErr(viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma-emulator"
		// (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".enigma-emulator")
	}

	viper.AutomaticEnv() // read in environment variables that match

	level := zerolog.InfoLevel
	if verbose || traceStages {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// lookupWheel resolves a catalog name to a fresh wheel instance.
func lookupWheel(name string) *rotor.Rotor {
	w, ok := rotor.Lookup(name)
	if !ok {
		cobra.CheckErr(fmt.Sprintf("unknown wheel %q; run \"enigma-emulator wheels\" for the catalog", name))
	}
	r, err := w.Build()
	cobra.CheckErr(err)
	return r
}

// buildMachine assembles and keys a machine from the resolved settings
// (flags, config file or environment, in viper's order of precedence).
func buildMachine() *machine.Machine {
	names := viper.GetStringSlice("rotors")
	rotors := make([]*rotor.Rotor, 0, len(names))
	for _, name := range names {
		rotors = append(rotors, lookupWheel(name))
	}

	settings := machine.Settings{
		Rotors:    rotors,
		Rings:     viper.GetIntSlice("rings"),
		Reflector: lookupWheel(viper.GetString("reflector")),
		Plugboard: viper.GetStringSlice("plugboard"),
	}
	wheels := 3
	if fourth := viper.GetString("fourth"); fourth != "" {
		settings.Fourth = lookupWheel(fourth)
		wheels = 4
	}

	m := machine.New()
	if traceStages {
		m.SetSink(stageLogger{log: log})
	}
	cobra.CheckErr(m.Configure(settings))
	cobra.CheckErr(m.SetKey(resolveKey(wheels)))

	log.Debug().
		Strs("rotors", names).
		Str("reflector", settings.Reflector.Name()).
		Str("plugboard", strings.Join(settings.Plugboard, " ")).
		Str("key", m.Key()).
		Msg("machine configured")
	return m
}

// resolveKey returns the message key to dial in.  The key is obtained from
// either:
// 1. The --key flag, the config file, or the environment
// 2. User input from the terminal
// 3. The all-A default, matching a machine fresh off Configure
func resolveKey(wheels int) string {
	key := viper.GetString("key")
	if key == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Enter the %d-letter message key: ", wheels)
		byteKey, err := term.ReadPassword(int(os.Stdin.Fd()))
		cobra.CheckErr(err)
		fmt.Fprintln(os.Stderr, "")
		key = string(byteKey)
	}
	if key == "" {
		key = strings.Repeat("A", wheels)
	}
	return key
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting a message.  If input and/or output file names were
	given, then those files will be opened.  Otherwise stdin and stdout are
	used.
*/
func getInputAndOutputFiles(encrypting bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 {
		if inputFileName == "-" {
			fin = os.Stdin
		} else {
			fin, err = os.Open(inputFileName)
			cobra.CheckErr(err)
		}
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if inputFileName == "-" {
		fout = os.Stdout
	} else if encrypting {
		outputFileName = inputFileName + encryptedSuffix
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		if strings.HasSuffix(inputFileName, encryptedSuffix) {
			outputFileName = strings.TrimSuffix(inputFileName, encryptedSuffix)
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		} else {
			fout = os.Stdout
		}
	}
	return fin, fout
}

// readMessage returns the message text: trailing command-line arguments if
// present, otherwise the whole input file.
func readMessage(args []string, fin *os.File) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	data, err := io.ReadAll(fin)
	cobra.CheckErr(err)
	return string(data)
}
