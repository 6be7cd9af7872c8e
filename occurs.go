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
	"github.com/wdamron/subst/types"
)

// OccursCheck returns a CircularBindingError if tv occurs within t, or a MalformedTypeError if t
// is not a well-formed type expression. Procedure parameters are checked left to right, then the
// return type; the first failure is returned.
func OccursCheck(tv *types.Var, t types.Type) error {
	if tv == nil {
		return &MalformedTypeError{}
	}
	return occursCheck(tv, t, t)
}

func occursCheck(tv *types.Var, t, whole types.Type) error {
	switch t := t.(type) {
	case *types.Atomic:
		if t == nil {
			return &MalformedTypeError{Type: whole}
		}
		return nil

	case *types.Var:
		if t == nil {
			return &MalformedTypeError{Type: whole}
		}
		if tv.Is(t) {
			return &CircularBindingError{Var: tv, Type: whole}
		}
		return nil

	case *types.Proc:
		if t == nil {
			return &MalformedTypeError{Type: whole}
		}
		for _, param := range t.Params {
			if err := occursCheck(tv, param, whole); err != nil {
				return err
			}
		}
		return occursCheck(tv, t.Return, whole)

	default:
		return &MalformedTypeError{Type: whole}
	}
}
