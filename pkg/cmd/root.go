// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// NewRootCmd constructs the base command, along with all child commands.  Each
// command tree carries its own configuration, such that flags set on one tree
// never leak into another.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		config  = viper.New()
	)
	//
	root := &cobra.Command{
		Use:   "go-poly",
		Short: "A calculator for dense polynomials.",
		Long: `A calculator for dense univariate polynomials.
	Polynomials are given as quoted lines of whitespace-separated coefficients,
	from lowest to highest degree.  For example, "3 0 1" denotes x^2 + 3.
	Operands starting with a negative number (e.g. "-1 2") are accepted as they
	are; anything else starting with '-' can be passed after "--".`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(config, cfgFile)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "version") {
				fmt.Fprintln(cmd.OutOrStdout(), "go-poly "+version())
			} else {
				_ = cmd.Help()
			}
		},
	}
	//
	root.Flags().Bool("version", false, "Report version of this executable")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "read configuration from a YAML file")
	root.PersistentFlags().StringP("field", "f", FieldInt,
		fmt.Sprintf("coefficient domain (%s)", strings.Join(Fields(), ", ")))
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	//
	bindFlag(config, root, "field")
	bindFlag(config, root, "verbose")
	// Operator commands
	for _, op := range operators {
		root.AddCommand(newOperatorCmd(op, config))
	}
	//
	root.AddCommand(newReplCmd(config))
	//
	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := run(NewRootCmd(), os.Args[1:]); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// Run a command tree on the given command-line arguments.
func run(root *cobra.Command, args []string) error {
	root.SetArgs(escapeOperands(args))
	//
	return root.Execute()
}

// Escape every argument which looks like a negative coefficient, so that it is
// parsed as a positional operand rather than as a shorthand flag.  Arguments
// after "--" are left alone.
func escapeOperands(args []string) []string {
	res := make([]string, len(args))
	//
	for i, arg := range args {
		if arg == "--" {
			copy(res[i:], args[i:])
			break
		} else if isNegativeOperand(arg) {
			// Leading whitespace is dropped again when the operand is parsed.
			arg = " " + arg
		}
		//
		res[i] = arg
	}
	//
	return res
}

func isNegativeOperand(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && (unicode.IsDigit(rune(arg[1])) || arg[1] == '.')
}

// Configuration is drawn from (in order of precedence) explicit flags,
// environment variables prefixed with POLY_, and an optional config file.
func initConfig(config *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
		//
		if err := config.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}
	//
	config.SetEnvPrefix("POLY")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	// Configure log level
	if config.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	//
	if cfgFile != "" {
		log.Debugf("using config file %s", config.ConfigFileUsed())
	}
	//
	return nil
}

func version() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}
