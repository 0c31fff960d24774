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

// AddScalar returns p+v.
func (p Polynomial[T]) AddScalar(v T) Polynomial[T] {
	return p.Add(Constant(v))
}

// SubScalar returns p-v.
func (p Polynomial[T]) SubScalar(v T) Polynomial[T] {
	return p.Sub(Constant(v))
}

// MulScalar returns p*v.
func (p Polynomial[T]) MulScalar(v T) Polynomial[T] {
	return p.Mul(Constant(v))
}

// DivScalar returns p/v, which fails with ErrDivisionByZero if v is zero.
func (p Polynomial[T]) DivScalar(v T) (Polynomial[T], error) {
	return p.Div(Constant(v))
}

// EqualScalar determines whether p is the degree-zero polynomial v.
func (p Polynomial[T]) EqualScalar(v T) bool {
	return p.Equal(Constant(v))
}

// ScalarAdd returns v+p.
func ScalarAdd[T Coefficient[T]](v T, p Polynomial[T]) Polynomial[T] {
	return p.AddScalar(v)
}

// ScalarSub returns v-p.  This is computed as -(p-v).
func ScalarSub[T Coefficient[T]](v T, p Polynomial[T]) Polynomial[T] {
	return p.SubScalar(v).Neg()
}

// ScalarMul returns v*p.
func ScalarMul[T Coefficient[T]](v T, p Polynomial[T]) Polynomial[T] {
	return p.MulScalar(v)
}

// ScalarDiv returns v/p, which fails with ErrDivisionByZero if p is zero.
func ScalarDiv[T Coefficient[T]](v T, p Polynomial[T]) (Polynomial[T], error) {
	return Constant(v).Div(p)
}

// ScalarEqual determines whether v equals p.
func ScalarEqual[T Coefficient[T]](v T, p Polynomial[T]) bool {
	return p.EqualScalar(v)
}
