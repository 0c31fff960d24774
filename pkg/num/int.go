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

import "strconv"

// Int is a 64-bit integer coefficient.  Equality is exact and division
// truncates towards zero, hence polynomial division over Int is only exact
// when every leading coefficient divides evenly.
type Int int64

// Ints converts zero or more int64 values into Int coefficients.
func Ints(vals ...int64) []Int {
	res := make([]Int, len(vals))
	//
	for i, v := range vals {
		res[i] = Int(v)
	}
	//
	return res
}

// Add x+y
func (x Int) Add(y Int) Int {
	return x + y
}

// Sub x-y
func (x Int) Sub(y Int) Int {
	return x - y
}

// Mul x*y
func (x Int) Mul(y Int) Int {
	return x * y
}

// Div x/y, truncated towards zero.
func (x Int) Div(y Int) Int {
	return x / y
}

// Neg -x
func (x Int) Neg() Int {
	return -x
}

// IsZero implementation for the Coefficient interface.
func (x Int) IsZero() bool {
	return x == 0
}

// IsOne implementation for the Coefficient interface.
func (x Int) IsOne() bool {
	return x == 1
}

// Equal implementation for the Coefficient interface.
func (x Int) Equal(y Int) bool {
	return x == y
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns |x|
func (x Int) Abs() Int {
	if x < 0 {
		return -x
	}
	//
	return x
}

// SetUint64 implementation for the Coefficient interface.
func (x Int) SetUint64(val uint64) Int {
	return Int(val)
}

// SetString parses a base 10 integer.
func (x Int) SetString(s string) (Int, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	//
	return Int(v), err
}

func (x Int) String() string {
	return strconv.FormatInt(int64(x), 10)
}
