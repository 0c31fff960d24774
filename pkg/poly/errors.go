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
	"fmt"
)

// ErrDivisionByZero is returned when the divisor of a polynomial division is
// (or normalises to) the zero polynomial.
var ErrDivisionByZero = errors.New("division by zero polynomial")

// ErrIndexOutOfRange is returned when a coefficient is accessed beyond the
// current length of a polynomial.
var ErrIndexOutOfRange = errors.New("coefficient index out of range")

// ErrMalformedInput is matched (via errors.Is) by every MalformedInputError.
var ErrMalformedInput = errors.New("malformed coefficient")

// MalformedInputError identifies a token which could not be converted into a
// coefficient during parsing.
type MalformedInputError struct {
	// Token which failed to parse.
	Token string
	// Position of the token within the line, counting from zero.
	Position uint
	// Underlying error reported by the coefficient type.
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed coefficient %q at position %d: %v", e.Token, e.Position, e.Err)
}

// Unwrap exposes both ErrMalformedInput and the underlying cause.
func (e *MalformedInputError) Unwrap() []error {
	return []error{ErrMalformedInput, e.Err}
}

func indexError(index uint, length uint) error {
	return fmt.Errorf("index %d with length %d: %w", index, length, ErrIndexOutOfRange)
}
