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
package field_test

import (
	"math/rand"
	"testing"

	"github.com/consensys/go-poly/pkg/field"
	"github.com/consensys/go-poly/pkg/field/bls12_377"
	"github.com/consensys/go-poly/pkg/field/koalabear"
	"github.com/consensys/go-poly/pkg/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// make sure the interface is adhered to.
	_ = field.Element[koalabear.Element](koalabear.Element{})
	_ = field.Element[bls12_377.Element](bls12_377.Element{})
}

func Test_FieldElement_01(t *testing.T) {
	checkElement[koalabear.Element](t)
	checkElement[bls12_377.Element](t)
}

func Test_FieldPoly_01(t *testing.T) {
	checkExactDivision[koalabear.Element](t)
	checkExactDivision[bls12_377.Element](t)
}

func Test_FieldPoly_02(t *testing.T) {
	checkRandomDivision[koalabear.Element](t, 1)
	checkRandomDivision[bls12_377.Element](t, 2)
}

func Test_FieldPoly_03(t *testing.T) {
	// Field elements are unsigned, so every later term is added.
	assert.Equal(t, "2x + 1", field.Poly[koalabear.Element](1, 2).String())
	assert.Equal(t, "x^2 + 3", field.Poly[bls12_377.Element](3, 0, 1).String())
	assert.Equal(t, "0", field.Poly[koalabear.Element]().String())
}

func Test_FieldPoly_04(t *testing.T) {
	p, err := poly.Parse[koalabear.Element]("1 2 2130706432")
	require.NoError(t, err)
	// 2130706432 = -1 mod p
	assert.True(t, p.Equal(field.Poly[koalabear.Element](1, 2, -1)))
	//
	_, err = poly.Parse[bls12_377.Element]("1 two")
	assert.ErrorIs(t, err, poly.ErrMalformedInput)
	//
	_, err = poly.Parse[koalabear.Element]("010 0b11")
	assert.ErrorIs(t, err, poly.ErrMalformedInput)
}

func checkElement[F field.Element[F]](t *testing.T) {
	var (
		zero  = field.Zero[F]()
		one   = field.One[F]()
		two   = field.Uint64[F](2)
		three = field.Uint64[F](3)
	)
	//
	assert.True(t, zero.IsZero())
	assert.True(t, one.IsOne())
	assert.True(t, one.Add(two).Equal(three))
	assert.True(t, three.Sub(two).Equal(one))
	assert.True(t, two.Mul(two).Equal(field.Uint64[F](4)))
	assert.True(t, three.Div(three).IsOne())
	assert.True(t, two.Inverse().Mul(two).IsOne())
	assert.True(t, two.Neg().Add(two).IsZero())
	assert.True(t, field.Int64[F](-3).Equal(three.Neg()))
	assert.Equal(t, "3", three.String())
	//
	v, err := zero.SetString("3")
	require.NoError(t, err)
	assert.True(t, v.Equal(three))
	// Only decimal values are accepted
	ten, err := zero.SetString("010")
	require.NoError(t, err)
	assert.True(t, ten.Equal(field.Uint64[F](10)))
	//
	for _, s := range []string{"0b11", "0x10", "0o7", "1_000", ""} {
		_, err = zero.SetString(s)
		assert.Error(t, err, "parsing %q", s)
	}
	// Modulus wraps around to zero
	m, err := zero.SetString(zero.Modulus().String())
	require.NoError(t, err)
	assert.True(t, m.IsZero())
}

func checkExactDivision[F field.Element[F]](t *testing.T) {
	// (x^2 + 1) / 2x = x/2, remainder 1
	var (
		lhs  = field.Poly[F](1, 0, 1)
		rhs  = field.Poly[F](0, 2)
		half = field.Uint64[F](2).Inverse()
	)
	//
	q, r, err := lhs.DivMod(rhs)
	require.NoError(t, err)
	assert.True(t, q.Equal(poly.Monomial(half, 1)), "quotient %s", q.String())
	assert.True(t, r.EqualScalar(field.One[F]()), "remainder %s", r.String())
	//
	_, err = lhs.Div(field.Poly[F]())
	assert.ErrorIs(t, err, poly.ErrDivisionByZero)
}

func checkRandomDivision[F field.Element[F]](t *testing.T, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	//
	for range 100 {
		a, b := randPoly[F](rng), randPoly[F](rng)
		//
		if b.IsZero() {
			continue
		}
		// Multiplication is undone by division
		q, err := a.Mul(b).Div(b)
		require.NoError(t, err)
		assert.True(t, q.Equal(a))
		// Quotient and remainder reconstruct the dividend
		q, r, err := a.DivMod(b)
		require.NoError(t, err)
		assert.True(t, q.Mul(b).Add(r).Equal(a))
		//
		if d, ok := r.Degree(); ok {
			e, _ := b.Degree()
			assert.Less(t, d, e)
		}
	}
}

func randPoly[F field.Element[F]](rng *rand.Rand) poly.Polynomial[F] {
	coeffs := make([]F, rng.Intn(6))
	//
	for i := range coeffs {
		coeffs[i] = field.Uint64[F](rng.Uint64())
	}
	//
	return poly.New(coeffs...)
}
