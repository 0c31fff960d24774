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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func newReplCmd(config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate operators read line by line from standard input.",
		Long: `Evaluate operators read line by line from standard input.
	Each line names an operator followed by its operands, which are separated by
	"|".  For example, "mul 1 1 | -1 1" computes (x + 1)*(x - 1).  Enter "quit"
	(or end the input) to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			//
			return repl(in, cmd.OutOrStdout(), config.GetString("field"), isTerminal(in))
		},
	}
}

// Run the read-eval-print loop.  Errors arising from individual lines are
// reported, but do not stop the loop.
func repl(in io.Reader, out io.Writer, field string, interactive bool) error {
	scanner := bufio.NewScanner(in)
	//
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		//
		if !scanner.Scan() {
			return scanner.Err()
		}
		//
		line := strings.TrimSpace(scanner.Text())
		//
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		//
		op, args := splitLine(line)
		log.Debugf("%s %q over %s", op, args, field)
		//
		if res, err := Calculate(field, op, args); err != nil {
			log.Error(err)
		} else {
			fmt.Fprintln(out, res)
		}
	}
}

// Split a line into the operator name and its (|-separated) operands.
func splitLine(line string) (string, []string) {
	op, rest, _ := strings.Cut(line, " ")
	//
	if strings.TrimSpace(rest) == "" {
		return op, nil
	}
	//
	args := strings.Split(rest, "|")
	//
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	//
	return op, args
}

func isTerminal(in io.Reader) bool {
	if f, ok := in.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	//
	return false
}
