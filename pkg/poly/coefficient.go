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
package poly

import "fmt"

// Coefficient captures the arithmetic a polynomial needs from its coefficients.
// Observe that the zero value of any Coefficient type must be the additive
// identity, since the zero value is used to pad and initialise coefficient
// sequences.
type Coefficient[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Sub x-y
	Sub(y Operand) Operand
	// Mul x*y
	Mul(y Operand) Operand
	// Div x/y.  The divisor passed by a polynomial is never zero.
	Div(y Operand) Operand
	// Neg -x
	Neg() Operand
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Equal determines whether two values are equal under the equality policy
	// of the coefficient type (e.g. exact, or within some tolerance).
	Equal(y Operand) bool
	// SetUint64 constructs a value from a given uint64, returning a fresh value
	// (the receiver is not modified).
	SetUint64(val uint64) Operand
	// SetString parses a value from its textual representation, returning a
	// fresh value (the receiver is not modified).
	SetString(s string) (Operand, error)
}

// Signed is implemented by ordered coefficient types.  When available, it is
// used to render coefficients with a separate sign (e.g. "- 3x" rather than
// "+ -3x").
type Signed[Operand any] interface {
	// Sign returns -1, 0 or 1 depending on the sign of x.
	Sign() int
	// Abs returns |x|
	Abs() Operand
}
