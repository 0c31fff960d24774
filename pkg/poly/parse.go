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
	"errors"
	"io"
	"strings"
)

// Parse a line of whitespace-separated coefficients, given from lowest to
// highest degree, into a polynomial.  A token which the coefficient type
// cannot parse yields a *MalformedInputError.
func Parse[T Coefficient[T]](line string) (Polynomial[T], error) {
	var (
		zero   T
		coeffs []T
	)
	//
	for i, token := range strings.Fields(line) {
		c, err := zero.SetString(token)
		//
		if err != nil {
			return Polynomial[T]{}, &MalformedInputError{token, uint(i), err}
		}
		//
		coeffs = append(coeffs, c)
	}
	//
	return Polynomial[T]{normalise(coeffs)}, nil
}

// ScanLine reads a single line of coefficients from a given reader, replacing
// the contents of this polynomial.  No more than one line is consumed from
// the reader.  If the line is malformed, or nothing could be read, then p is
// left unchanged.
func (p *Polynomial[T]) ScanLine(r io.Reader) error {
	line, err := readLine(r)
	//
	if err != nil {
		return err
	}
	//
	res, err := Parse[T](line)
	//
	if err == nil {
		*p = res
	}
	//
	return err
}

// Read bytes up to (and including) the next newline.  Reading proceeds one
// byte at a time, to avoid consuming beyond the end of the line.  Returns
// io.EOF only if the reader was exhausted before anything was read.
func readLine(r io.Reader) (string, error) {
	var (
		builder strings.Builder
		buf     [1]byte
		read    bool
	)
	//
	for {
		n, err := r.Read(buf[:])
		//
		if n > 0 {
			read = true
			//
			if buf[0] == '\n' {
				break
			}
			//
			builder.WriteByte(buf[0])
		}
		//
		if errors.Is(err, io.EOF) {
			if !read {
				return "", io.EOF
			}
			//
			break
		} else if err != nil {
			return "", err
		}
	}
	//
	return strings.TrimSuffix(builder.String(), "\r"), nil
}
