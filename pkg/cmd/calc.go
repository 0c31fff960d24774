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
	"strconv"
	"strings"

	"github.com/consensys/go-poly/pkg/field/bls12_377"
	"github.com/consensys/go-poly/pkg/field/koalabear"
	"github.com/consensys/go-poly/pkg/num"
	"github.com/consensys/go-poly/pkg/poly"
)

// FieldInt selects 64-bit integer coefficients.
const FieldInt = "int"

// FieldFloat selects 64-bit floating point coefficients.
const FieldFloat = "float"

// FieldBls12_377 selects coefficients from the scalar field of BLS12-377.
const FieldBls12_377 = "bls12-377"

// FieldKoalaBear selects coefficients from the KoalaBear prime field.
const FieldKoalaBear = "koalabear"

// Fields returns the names of all supported coefficient domains.
func Fields() []string {
	return []string{FieldInt, FieldFloat, FieldBls12_377, FieldKoalaBear}
}

// Calculate applies a named operator to the given operands over a given
// coefficient domain, returning the rendered result.
func Calculate(field string, op string, args []string) (string, error) {
	switch field {
	case FieldInt:
		return calculate[num.Int](op, args)
	case FieldFloat:
		return calculate[num.Float](op, args)
	case FieldBls12_377:
		return calculate[bls12_377.Element](op, args)
	case FieldKoalaBear:
		return calculate[koalabear.Element](op, args)
	default:
		return "", fmt.Errorf("unknown field %q (expected one of %s)", field, strings.Join(Fields(), ", "))
	}
}

func calculate[T poly.Coefficient[T]](name string, args []string) (string, error) {
	op, ok := lookupOperator(name)
	//
	if !ok {
		return "", fmt.Errorf("unknown operator %q", name)
	} else if len(args) != op.arity {
		return "", fmt.Errorf("%s expects %d operand(s), got %d", name, op.arity, len(args))
	}
	//
	lhs, err := poly.Parse[T](args[0])
	if err != nil {
		return "", err
	}
	// Operators with a single polynomial operand
	switch name {
	case "neg":
		return lhs.Neg().String(), nil
	case "format":
		return lhs.String(), nil
	case "eval":
		var zero T
		//
		x, err := zero.SetString(strings.TrimSpace(args[1]))
		if err != nil {
			return "", fmt.Errorf("malformed point %q: %w", args[1], err)
		}
		//
		return lhs.Eval(x).String(), nil
	case "pow":
		n, err := strconv.ParseUint(strings.TrimSpace(args[1]), 10, 0)
		if err != nil {
			return "", fmt.Errorf("malformed exponent %q: %w", args[1], err)
		}
		//
		return lhs.Pow(uint(n)).String(), nil
	}
	// Binary operators
	rhs, err := poly.Parse[T](args[1])
	if err != nil {
		return "", err
	}
	//
	switch name {
	case "add":
		return lhs.Add(rhs).String(), nil
	case "sub":
		return lhs.Sub(rhs).String(), nil
	case "mul":
		return lhs.Mul(rhs).String(), nil
	case "div":
		quot, err := lhs.Div(rhs)
		return quot.String(), err
	case "mod":
		_, rem, err := lhs.DivMod(rhs)
		return rem.String(), err
	case "eq":
		return fmt.Sprintf("%t", lhs.Equal(rhs)), nil
	}
	// unreachable
	panic(fmt.Sprintf("unhandled operator %q", name))
}
