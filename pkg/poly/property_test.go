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
	"math/rand"
	"testing"

	"github.com/consensys/go-poly/pkg/num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Number of random polynomials (or pairs / triples thereof) to check.
const nSamples = 200

func randInts(rng *rand.Rand) IntPoly {
	coeffs := make([]num.Int, rng.Intn(6))
	//
	for i := range coeffs {
		coeffs[i] = num.Int(rng.Intn(21) - 10)
	}
	//
	return New(coeffs...)
}

func randFloats(rng *rand.Rand) FloatPoly {
	coeffs := make([]num.Float, rng.Intn(5))
	//
	for i := range coeffs {
		coeffs[i] = num.Float(rng.Float64()*20 - 10)
	}
	//
	return New(coeffs...)
}

// Normal form holds after every arithmetic operation.
func Test_PolyProperty_NormalForm(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	//
	for range nSamples {
		a, b := randInts(rng), randInts(rng)
		//
		results := []IntPoly{a, a.Add(b), a.Sub(b), a.Mul(b), a.Neg(), a.Plus(), ScalarSub(3, a)}
		//
		if !b.IsZero() {
			q, r, err := a.DivMod(b)
			require.NoError(t, err)
			results = append(results, q, r)
		}
		//
		for _, p := range results {
			if n := p.Len(); n > 0 {
				top, err := p.Coeff(n - 1)
				require.NoError(t, err)
				assert.False(t, top.IsZero(), "%s not in normal form", p.String())
			}
		}
	}
}

func Test_PolyProperty_Identity(t *testing.T) {
	var (
		rng  = rand.New(rand.NewSource(2))
		zero IntPoly
	)
	//
	for range nSamples {
		a := randInts(rng)
		//
		assert.True(t, a.Add(zero).Equal(a), "%s + 0", a.String())
		assert.True(t, a.Sub(zero).Equal(a), "%s - 0", a.String())
		assert.True(t, a.MulScalar(1).Equal(a), "%s * 1", a.String())
		assert.True(t, a.Sub(a).IsZero(), "%s - itself", a.String())
		assert.True(t, a.Neg().Neg().Equal(a), "-(-(%s))", a.String())
		assert.True(t, a.Plus().Equal(a), "+(%s)", a.String())
	}
}

func Test_PolyProperty_Commutative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	//
	for range nSamples {
		a, b := randInts(rng), randInts(rng)
		v := num.Int(rng.Intn(21) - 10)
		//
		assert.True(t, a.Add(b).Equal(b.Add(a)), "(%s) + (%s)", a.String(), b.String())
		assert.True(t, a.Mul(b).Equal(b.Mul(a)), "(%s) * (%s)", a.String(), b.String())
		assert.True(t, ScalarAdd(v, a).Equal(a.AddScalar(v)), "%s + (%s)", v, a.String())
		assert.True(t, ScalarMul(v, a).Equal(a.MulScalar(v)), "%s * (%s)", v, a.String())
		assert.True(t, ScalarSub(v, a).Equal(a.SubScalar(v).Neg()), "%s - (%s)", v, a.String())
		assert.True(t, ScalarSub(v, a).Equal(Constant(v).Sub(a)), "%s - (%s)", v, a.String())
	}
}

func Test_PolyProperty_Distributive(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	//
	for range nSamples {
		a, b, c := randInts(rng), randInts(rng), randInts(rng)
		//
		lhs := a.Mul(b.Add(c))
		rhs := a.Mul(b).Add(a.Mul(c))
		assert.True(t, lhs.Equal(rhs), "(%s) * ((%s) + (%s))", a.String(), b.String(), c.String())
	}
}

func Test_PolyProperty_DistributiveFloat(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	//
	for range nSamples {
		a, b, c := randFloats(rng), randFloats(rng), randFloats(rng)
		//
		lhs := a.Mul(b.Add(c))
		rhs := a.Mul(b).Add(a.Mul(c))
		assert.True(t, lhs.Equal(rhs), "(%s) * ((%s) + (%s))", a.String(), b.String(), c.String())
	}
}

// Exact division undoes multiplication.
func Test_PolyProperty_DivMul(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	//
	for range nSamples {
		a, b := randInts(rng), randInts(rng)
		//
		if b.IsZero() {
			continue
		}
		//
		q, err := a.Mul(b).Div(b)
		require.NoError(t, err)
		assert.True(t, q.Equal(a), "(%s) * (%s) / (%s) gave %s", a.String(), b.String(), b.String(), q.String())
		assert.True(t, q.Mul(b).Equal(a.Mul(b)))
	}
}

// Quotient and remainder always reconstruct the dividend, even where integer
// division truncates.
func Test_PolyProperty_DivMod(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	//
	for range nSamples {
		a, b := randInts(rng), randInts(rng)
		//
		if b.IsZero() {
			continue
		}
		//
		q, r, err := a.DivMod(b)
		require.NoError(t, err)
		assert.True(t, q.Mul(b).Add(r).Equal(a), "(%s) / (%s)", a.String(), b.String())
	}
}
