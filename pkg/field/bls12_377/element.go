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
package bls12_377

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element (the scalar field of BLS12-377) to conform to the
// field.Element interface.
type Element struct {
	fr.Element
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Div x * y⁻¹
func (x Element) Div(y Element) Element {
	var res fr.Element
	//
	res.Div(&x.Element, &y.Element)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res fr.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res fr.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// Equal implementation for the Element interface
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return fr.Modulus()
}

// SetUint64 implementation for the Element interface.
func (x Element) SetUint64(val uint64) Element {
	var res fr.Element
	//
	res.SetUint64(val)
	//
	return Element{res}
}

// SetString parses a (possibly negative) decimal value, reducing it modulo
// the field.
func (x Element) SetString(s string) (Element, error) {
	var res fr.Element
	//
	val, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, fmt.Errorf("invalid decimal %q", s)
	}
	//
	res.SetBigInt(val)
	//
	return Element{res}, nil
}

func (x Element) String() string {
	return x.Element.String()
}
