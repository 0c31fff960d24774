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
	"bytes"
	"fmt"
	"io"
)

// String renders this polynomial as a sum of terms in descending order of
// degree, such as "2x^2 - x + 3".  Zero terms are skipped and coefficients of
// magnitude one are omitted (except for the constant term), hence this is
// intended for display only.  The zero polynomial is rendered as "0".
func (p Polynomial[T]) String() string {
	var (
		buf   bytes.Buffer
		first = true
	)
	//
	for degree, coeff := range p.Backward() {
		if coeff.IsZero() {
			continue
		}
		//
		if !first {
			buf.WriteString(" ")
		}
		// Split sign from magnitude, where this makes sense.
		if s, ok := any(coeff).(Signed[T]); ok {
			if s.Sign() < 0 {
				buf.WriteString("- ")
			} else if !first {
				buf.WriteString("+ ")
			}
			//
			coeff = s.Abs()
		} else if !first {
			buf.WriteString("+ ")
		}
		//
		writeTerm(&buf, coeff, degree)
		//
		first = false
	}
	//
	if first {
		return "0"
	}
	//
	return buf.String()
}

// WriteTo writes the string representation of this polynomial to a given
// writer.
func (p Polynomial[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	//
	return int64(n), err
}

func writeTerm[T Coefficient[T]](buf *bytes.Buffer, magnitude T, degree uint) {
	// Various cases to improve readability
	if degree == 0 || !magnitude.IsOne() {
		buf.WriteString(magnitude.String())
	}
	//
	switch degree {
	case 0:
	case 1:
		buf.WriteString("x")
	default:
		fmt.Fprintf(buf, "x^%d", degree)
	}
}
