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

// construct provides short constructors for type expressions.
package construct

import (
	"github.com/wdamron/subst/types"
)

// Atomic type: `number`, `boolean`, etc
func TAtomic(name string) *types.Atomic {
	return &types.Atomic{Name: name}
}

func TNumber() *types.Atomic  { return TAtomic("number") }
func TBoolean() *types.Atomic { return TAtomic("boolean") }
func TString() *types.Atomic  { return TAtomic("string") }
func TVoid() *types.Atomic    { return TAtomic("void") }

// Type-variable: `T1`
func TVar(name string) *types.Var {
	return &types.Var{Name: name}
}

// Type-variables: `T1`, `T2`, ...
func TVars(names ...string) []*types.Var {
	vs := make([]*types.Var, len(names))
	for i, name := range names {
		vs[i] = TVar(name)
	}
	return vs
}

// Procedure type: `(number, number) -> number`
func TProc(params []types.Type, ret types.Type) *types.Proc {
	return &types.Proc{Params: params, Return: ret}
}

// Procedure type: `() -> number`
func TProc0(ret types.Type) *types.Proc {
	return &types.Proc{Return: ret}
}

// Procedure type: `number -> number`
func TProc1(param types.Type, ret types.Type) *types.Proc {
	return &types.Proc{Params: []types.Type{param}, Return: ret}
}

// Procedure type: `(number, number) -> number`
func TProc2(param1, param2 types.Type, ret types.Type) *types.Proc {
	return &types.Proc{Params: []types.Type{param1, param2}, Return: ret}
}

// Procedure type: `(number, number, number) -> number`
func TProc3(param1, param2, param3 types.Type, ret types.Type) *types.Proc {
	return &types.Proc{Params: []types.Type{param1, param2, param3}, Return: ret}
}

// List of type expressions, for building substitutions.
func Types(ts ...types.Type) []types.Type { return ts }
