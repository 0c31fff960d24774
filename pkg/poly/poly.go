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

import (
	"iter"
	"slices"
)

// Polynomial is a dense univariate polynomial whose ith coefficient is that of
// x^i.  Polynomials are kept in normal form, meaning the highest coefficient
// (if any) is non-zero.  This holds after construction and after every
// arithmetic operation, but not necessarily after SetCoeff.  Observe that an
// unitialised Polynomial variable corresponds with zero.
//
// Polynomials have value semantics: the underlying coefficient array is never
// modified once constructed and, hence, copies of a Polynomial can never
// interfere with each other.
type Polynomial[T Coefficient[T]] struct {
	coeffs []T
}

// New constructs a polynomial from zero or more coefficients given from lowest
// to highest degree.  The coefficients are copied and then normalised.
func New[T Coefficient[T]](coeffs ...T) Polynomial[T] {
	return Polynomial[T]{normalise(slices.Clone(coeffs))}
}

// FromSeq constructs a polynomial from a sequence of coefficients given from
// lowest to highest degree.
func FromSeq[T Coefficient[T]](seq iter.Seq[T]) Polynomial[T] {
	return Polynomial[T]{normalise(slices.Collect(seq))}
}

// Constant constructs a polynomial of degree zero.  If the given value is zero
// then this returns the zero polynomial.
func Constant[T Coefficient[T]](value T) Polynomial[T] {
	return New(value)
}

// Monomial constructs the polynomial c·x^degree.
func Monomial[T Coefficient[T]](coeff T, degree uint) Polynomial[T] {
	coeffs := make([]T, degree+1)
	coeffs[degree] = coeff
	//
	return Polynomial[T]{normalise(coeffs)}
}

// Clone performs a deep copy of this polynomial.
func (p Polynomial[T]) Clone() Polynomial[T] {
	return Polynomial[T]{slices.Clone(p.coeffs)}
}

// Len returns the number of coefficients in this polynomial.
func (p Polynomial[T]) Len() uint {
	return uint(len(p.coeffs))
}

// IsZero checks whether every coefficient of this polynomial is zero.
func (p Polynomial[T]) IsZero() bool {
	return len(normalise(p.coeffs)) == 0
}

// Degree returns the index of the highest non-zero coefficient.  The degree of
// the zero polynomial is undefined, in which case false is returned.
func (p Polynomial[T]) Degree() (uint, bool) {
	n := len(normalise(p.coeffs))
	//
	if n == 0 {
		return 0, false
	}
	//
	return uint(n - 1), true
}

// Leading returns the highest non-zero coefficient, or zero for the zero
// polynomial.
func (p Polynomial[T]) Leading() T {
	var (
		zero   T
		coeffs = normalise(p.coeffs)
	)
	//
	if len(coeffs) == 0 {
		return zero
	}
	//
	return coeffs[len(coeffs)-1]
}

// Coefficients returns a copy of the coefficients of this polynomial, from
// lowest to highest degree.
func (p Polynomial[T]) Coefficients() []T {
	return slices.Clone(p.coeffs)
}

// Coeff returns the coefficient at a given index.
func (p Polynomial[T]) Coeff(index uint) (T, error) {
	var zero T
	//
	if index >= p.Len() {
		return zero, indexError(index, p.Len())
	}
	//
	return p.coeffs[index], nil
}

// SetCoeff overwrites the coefficient at a given (existing) index.  This does
// not normalise the polynomial so, for example, zeroing the top coefficient
// leaves it in place until the next arithmetic operation (or Normalise).
func (p *Polynomial[T]) SetCoeff(index uint, value T) error {
	if index >= p.Len() {
		return indexError(index, p.Len())
	}
	// Copy on write, so as not to disturb other copies
	coeffs := slices.Clone(p.coeffs)
	coeffs[index] = value
	p.coeffs = coeffs
	//
	return nil
}

// Normalise strips any zero coefficients from the top of this polynomial.
func (p *Polynomial[T]) Normalise() {
	p.coeffs = normalise(p.coeffs)
}

// Strip trailing zero coefficients.  This never modifies the underlying array.
func normalise[T Coefficient[T]](coeffs []T) []T {
	n := len(coeffs)
	//
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	//
	if n == 0 {
		return nil
	}
	//
	return coeffs[:n]
}
