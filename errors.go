// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package subst

import (
	"errors"

	"github.com/wdamron/subst/types"
)

// ErrArity is returned when a substitution is constructed from differing numbers of
// type-variables and type expressions.
var ErrArity = errors.New("Substitution type-variables and type expressions differ in length")

// CircularBindingError is returned when a type-variable would be bound to a type expression
// containing itself.
type CircularBindingError struct {
	Var  *types.Var
	Type types.Type
}

func (e *CircularBindingError) Error() string {
	return "Circular binding: " + types.TypeString(e.Var) + " occurs in " + types.TypeString(e.Type)
}

// MalformedTypeError is returned when a value is not an Atomic, Var, or Proc type expression.
type MalformedTypeError struct {
	Type types.Type
}

func (e *MalformedTypeError) Error() string {
	return "Malformed type expression: " + types.TypeString(e.Type)
}

// DuplicateVarError is returned when a type-variable is bound more than once in a substitution.
type DuplicateVarError struct {
	Var *types.Var
}

func (e *DuplicateVarError) Error() string {
	return "Type-variable " + types.TypeString(e.Var) + " is bound more than once"
}
