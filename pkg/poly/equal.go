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

// Equal performs structural equality between two polynomials, comparing
// coefficients using the equality policy of the coefficient type.  Missing
// coefficients are treated as zero, so that a polynomial left with zeros at
// the top (e.g. by SetCoeff) still equals its normal form.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	var zero T
	//
	for i := range max(len(p.coeffs), len(q.coeffs)) {
		l, r := zero, zero
		//
		if i < len(p.coeffs) {
			l = p.coeffs[i]
		}
		//
		if i < len(q.coeffs) {
			r = q.coeffs[i]
		}
		//
		if !l.Equal(r) {
			return false
		}
	}
	//
	return true
}
