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
package field

import (
	"math/big"

	"github.com/consensys/go-poly/pkg/poly"
)

// An Element of a prime-order field, usable as a polynomial coefficient.
// Equality is exact and division multiplies by the inverse, hence polynomial
// division over a field is exact.
type Element[Operand any] interface {
	poly.Coefficient[Operand]
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Return the modulus for the field in question.
	Modulus() *big.Int
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Int64 construct a field element from a given (possibly negative) int64,
// where negative values map to their additive inverse.
func Int64[F Element[F]](val int64) F {
	if val < 0 {
		return Uint64[F](uint64(-val)).Neg()
	}
	//
	return Uint64[F](uint64(val))
}

// Int64s converts zero or more int64 values into field elements.
func Int64s[F Element[F]](vals ...int64) []F {
	res := make([]F, len(vals))
	//
	for i, v := range vals {
		res[i] = Int64[F](v)
	}
	//
	return res
}

// Poly constructs a polynomial over a field from integer coefficients, given
// from lowest to highest degree.
func Poly[F Element[F]](vals ...int64) poly.Polynomial[F] {
	return poly.New(Int64s[F](vals...)...)
}
