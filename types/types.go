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

// types provides the type-expression language operated on by package subst.
package types

// Type is the base interface for all type expressions.
//
// The set of implementations is closed: Atomic, Var and Proc are the only variants.
type Type interface {
	TypeName() string
	isType()
}

func (t *Atomic) TypeName() string { return "Atomic" }
func (t *Var) TypeName() string    { return "Var" }
func (t *Proc) TypeName() string   { return "Proc" }

func (t *Atomic) isType() {}
func (t *Var) isType()    {}
func (t *Proc) isType()   {}

// Atomic type: `number` or `boolean`
type Atomic struct {
	Name string
}

// Type-variable: `T1`
type Var struct {
	Name string
}

// Is reports whether tv and other name the same type-variable.
func (tv *Var) Is(other *Var) bool {
	return tv != nil && other != nil && tv.Name == other.Name
}

// Procedure type: `(number, boolean) -> number`
type Proc struct {
	Params []Type
	Return Type
}

// Arity returns the number of parameters of the procedure type.
func (t *Proc) Arity() int { return len(t.Params) }

// Names of the primitive atomic types.
var atomicNames = map[string]bool{
	"number":  true,
	"boolean": true,
	"string":  true,
	"void":    true,
}

// IsAtomicName reports whether name is one of the primitive atomic type names.
func IsAtomicName(name string) bool { return atomicNames[name] }

func IsAtomic(t Type) bool {
	a, ok := t.(*Atomic)
	return ok && a != nil
}

func IsVar(t Type) bool {
	v, ok := t.(*Var)
	return ok && v != nil
}

func IsProc(t Type) bool {
	p, ok := t.(*Proc)
	return ok && p != nil
}

// Equal reports whether a and b are structurally equal. Type-variables are compared by name.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Atomic:
		b, ok := b.(*Atomic)
		return ok && a != nil && b != nil && a.Name == b.Name
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Is(b)
	case *Proc:
		b, ok := b.(*Proc)
		if !ok || a == nil || b == nil || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Equal(a.Return, b.Return)
	default:
		return a == nil && b == nil
	}
}

// Occurs reports whether tv occurs free within t.
func Occurs(tv *Var, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return tv.Is(t)
	case *Proc:
		if t == nil {
			return false
		}
		for _, param := range t.Params {
			if Occurs(tv, param) {
				return true
			}
		}
		return Occurs(tv, t.Return)
	default:
		return false
	}
}

// FreeVars returns the set of type-variables occurring within t.
func FreeVars(t Type) VarSet {
	b := NewVarSetBuilder()
	freeVars(b, t)
	return b.Build()
}

func freeVars(b *VarSetBuilder, t Type) {
	switch t := t.(type) {
	case *Var:
		if t != nil {
			b.Add(t)
		}
	case *Proc:
		if t == nil {
			return
		}
		for _, param := range t.Params {
			freeVars(b, param)
		}
		freeVars(b, t.Return)
	}
}
