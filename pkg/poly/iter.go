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

import "iter"

// All returns an iterator over the (degree, coefficient) pairs of this
// polynomial, from lowest to highest degree.  This includes zero coefficients.
func (p Polynomial[T]) All() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		for i, c := range p.coeffs {
			if !yield(uint(i), c) {
				return
			}
		}
	}
}

// Backward returns an iterator over the (degree, coefficient) pairs of this
// polynomial, from highest to lowest degree.
func (p Polynomial[T]) Backward() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		for i := len(p.coeffs) - 1; i >= 0; i-- {
			if !yield(uint(i), p.coeffs[i]) {
				return
			}
		}
	}
}

// Eval evaluates this polynomial at a given point using Horner's method.
func (p Polynomial[T]) Eval(x T) T {
	var acc T
	//
	for _, c := range p.Backward() {
		acc = acc.Mul(x).Add(c)
	}
	//
	return acc
}
