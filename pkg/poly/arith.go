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

// Add returns p+q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	return Polynomial[T]{zip(p.coeffs, q.coeffs, func(x, y T) T { return x.Add(y) })}
}

// Sub returns p-q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	return Polynomial[T]{zip(p.coeffs, q.coeffs, func(x, y T) T { return x.Sub(y) })}
}

// Mul returns p*q, computed by direct convolution of the two coefficient
// sequences.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	var (
		lhs = normalise(p.coeffs)
		rhs = normalise(q.coeffs)
	)
	//
	if len(lhs) == 0 || len(rhs) == 0 {
		return Polynomial[T]{}
	}
	//
	res := make([]T, len(lhs)+len(rhs)-1)
	//
	for i, ith := range lhs {
		for j, jth := range rhs {
			res[i+j] = res[i+j].Add(ith.Mul(jth))
		}
	}
	//
	return Polynomial[T]{normalise(res)}
}

// Div returns the quotient of p/q, discarding any remainder.  This fails with
// ErrDivisionByZero if q is zero.  Observe that, when p has a lower degree
// than q, the quotient is zero.
func (p Polynomial[T]) Div(q Polynomial[T]) (Polynomial[T], error) {
	quot, err := quotient(p.coeffs, q.coeffs)
	//
	return Polynomial[T]{quot}, err
}

// DivMod returns both the quotient and remainder of p/q, such that p equals
// quot*q + rem.  This fails with ErrDivisionByZero if q is zero.
func (p Polynomial[T]) DivMod(q Polynomial[T]) (quot Polynomial[T], rem Polynomial[T], err error) {
	if quot, err = p.Div(q); err != nil {
		return quot, rem, err
	}
	//
	return quot, p.Sub(quot.Mul(q)), nil
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	coeffs := make([]T, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		coeffs[i] = c.Neg()
	}
	//
	return Polynomial[T]{normalise(coeffs)}
}

// Plus returns +p, which is simply a copy of p.
func (p Polynomial[T]) Plus() Polynomial[T] {
	return p.Clone()
}

// AddAssign updates p in place to p+q.
func (p *Polynomial[T]) AddAssign(q Polynomial[T]) {
	*p = p.Add(q)
}

// SubAssign updates p in place to p-q.
func (p *Polynomial[T]) SubAssign(q Polynomial[T]) {
	*p = p.Sub(q)
}

// MulAssign updates p in place to p*q.
func (p *Polynomial[T]) MulAssign(q Polynomial[T]) {
	*p = p.Mul(q)
}

// DivAssign updates p in place to p/q.  On failure, p is left unchanged.
func (p *Polynomial[T]) DivAssign(q Polynomial[T]) error {
	quot, err := p.Div(q)
	//
	if err == nil {
		*p = quot
	}
	//
	return err
}

// Polynomial long division, returning only the (normalised) quotient.  Each
// step removes the leading coefficient of the running remainder outright,
// rather than relying on the subtraction to cancel it.  Thus, the loop always
// terminates even when coefficient division truncates (e.g. integers) or
// rounds (e.g. floating point).
func quotient[T Coefficient[T]](dividend, divisor []T) ([]T, error) {
	divisor = normalise(divisor)
	//
	if len(divisor) == 0 {
		return nil, ErrDivisionByZero
	}
	// Mutable copy of the dividend
	rem := append([]T(nil), normalise(dividend)...)
	//
	if len(rem) < len(divisor) {
		return nil, nil
	}
	//
	var (
		lead  = divisor[len(divisor)-1]
		quot  = make([]T, len(rem)-len(divisor)+1)
		width = len(divisor) - 1
	)
	//
	for len(rem) >= len(divisor) {
		n := len(rem) - 1
		degree := n - width
		coeff := rem[n].Div(lead)
		quot[degree] = coeff
		// Subtract coeff·x^degree·divisor, ignoring the leading term.
		for j := range width {
			rem[degree+j] = rem[degree+j].Sub(coeff.Mul(divisor[j]))
		}
		//
		rem = normalise(rem[:n])
	}
	//
	return normalise(quot), nil
}

// Combine two coefficient sequences element-wise, treating missing
// coefficients as zero.
func zip[T Coefficient[T]](lhs, rhs []T, op func(T, T) T) []T {
	var (
		zero T
		res  = make([]T, max(len(lhs), len(rhs)))
	)
	//
	for i := range res {
		l, r := zero, zero
		//
		if i < len(lhs) {
			l = lhs[i]
		}
		//
		if i < len(rhs) {
			r = rhs[i]
		}
		//
		res[i] = op(l, r)
	}
	//
	return normalise(res)
}
