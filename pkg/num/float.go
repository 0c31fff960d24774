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
package num

import (
	"math"
	"strconv"
)

// Tolerance is the relative (or, for values below one, absolute) tolerance
// used when comparing Float values.
const Tolerance = 1e-9

// Float is a 64-bit floating point coefficient.  Two Floats are equal when
// they differ by no more than Tolerance, scaled by the larger magnitude when
// that exceeds one.  A Float is zero when it equals 0 under this policy, so
// that rounding residue at the top of a polynomial is normalised away.
type Float float64

// Floats converts zero or more float64 values into Float coefficients.
func Floats(vals ...float64) []Float {
	res := make([]Float, len(vals))
	//
	for i, v := range vals {
		res[i] = Float(v)
	}
	//
	return res
}

// Add x+y
func (x Float) Add(y Float) Float {
	return x + y
}

// Sub x-y
func (x Float) Sub(y Float) Float {
	return x - y
}

// Mul x*y
func (x Float) Mul(y Float) Float {
	return x * y
}

// Div x/y
func (x Float) Div(y Float) Float {
	return x / y
}

// Neg -x
func (x Float) Neg() Float {
	return -x
}

// IsZero implementation for the Coefficient interface.
func (x Float) IsZero() bool {
	return x.Equal(0)
}

// IsOne implementation for the Coefficient interface.
func (x Float) IsOne() bool {
	return x.Equal(1)
}

// Equal implementation for the Coefficient interface.  Infinities and NaN are
// compared exactly, with NaN equal to itself.
func (x Float) Equal(y Float) bool {
	var (
		a = float64(x)
		b = float64(y)
	)
	//
	if !x.isFinite() || !y.isFinite() {
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	}
	//
	return math.Abs(a-b) <= Tolerance*max(1, math.Abs(a), math.Abs(b))
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x Float) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x < 0:
		return -1
	default:
		return 1
	}
}

// Abs returns |x|
func (x Float) Abs() Float {
	return Float(math.Abs(float64(x)))
}

// SetUint64 implementation for the Coefficient interface.
func (x Float) SetUint64(val uint64) Float {
	return Float(val)
}

// SetString parses a decimal floating point value.
func (x Float) SetString(s string) (Float, error) {
	v, err := strconv.ParseFloat(s, 64)
	//
	return Float(v), err
}

func (x Float) String() string {
	if math.IsInf(float64(x), 1) {
		return "Inf"
	}
	//
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

func (x Float) isFinite() bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}
