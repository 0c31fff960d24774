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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type operator struct {
	name  string
	arity int
	usage string
	short string
}

var operators = []operator{
	{"add", 2, "add lhs rhs", "Add two polynomials."},
	{"sub", 2, "sub lhs rhs", "Subtract one polynomial from another."},
	{"mul", 2, "mul lhs rhs", "Multiply two polynomials."},
	{"div", 2, "div lhs rhs", "Divide one polynomial by another, discarding the remainder."},
	{"mod", 2, "mod lhs rhs", "Compute the remainder of dividing one polynomial by another."},
	{"eq", 2, "eq lhs rhs", "Check whether two polynomials are equal."},
	{"pow", 2, "pow poly n", "Raise a polynomial to a given power."},
	{"neg", 1, "neg poly", "Negate a polynomial."},
	{"format", 1, "format poly", "Pretty print a polynomial."},
	{"eval", 2, "eval poly x", "Evaluate a polynomial at a given point."},
}

func lookupOperator(name string) (operator, bool) {
	for _, op := range operators {
		if op.name == name {
			return op, true
		}
	}
	//
	return operator{}, false
}

func newOperatorCmd(op operator, config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   op.usage,
		Short: op.short,
		Args:  cobra.ExactArgs(op.arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := config.GetString("field")
			//
			log.Debugf("%s %q over %s", op.name, args, field)
			//
			stats := newPerfStats()
			//
			res, err := Calculate(field, op.name, args)
			if err != nil {
				return err
			}
			//
			stats.log(op.name)
			//
			fmt.Fprintln(cmd.OutOrStdout(), res)
			//
			return nil
		},
	}
}
