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
	"strings"

	"github.com/wdamron/subst/types"
)

// Substitution is an immutable, ordered mapping from type-variables to type expressions.
//
// No type-variable is bound twice, and no type-variable occurs within the type expression
// it is bound to. The zero value is the empty substitution.
type Substitution struct {
	// vars holds only *types.Var entries, parallel to exprs.
	vars  types.TypeList
	exprs types.TypeList
}

// Empty returns the identity substitution.
func Empty() Substitution { return Substitution{} }

// New creates a substitution binding vars[i] to exprs[i], in order. Each binding is checked
// for circularity; the first failure is returned.
func New(vars []*types.Var, exprs []types.Type) (Substitution, error) {
	if len(vars) != len(exprs) {
		return Substitution{}, ErrArity
	}
	vb, eb := types.NewTypeListBuilder(), types.NewTypeListBuilder()
	for i := range vars {
		vb.Append(vars[i])
		eb.Append(exprs[i])
	}
	return newSubstitution(vb.Build(), eb.Build())
}

func newSubstitution(vars, exprs types.TypeList) (Substitution, error) {
	if vars.Len() != exprs.Len() {
		return Substitution{}, ErrArity
	}
	seen := types.NewVarSetBuilder()
	var err error
	vars.Range(func(i int, t types.Type) bool {
		tv, _ := t.(*types.Var)
		if tv == nil {
			err = &MalformedTypeError{Type: t}
			return false
		}
		if seen.Has(tv) {
			err = &DuplicateVarError{Var: tv}
			return false
		}
		seen.Add(tv)
		err = OccursCheck(tv, exprs.Get(i))
		return err == nil
	})
	if err != nil {
		return Substitution{}, err
	}
	return Substitution{vars: vars, exprs: exprs}, nil
}

func (s Substitution) IsEmpty() bool { return s.vars.Len() == 0 }

// Len returns the number of bindings.
func (s Substitution) Len() int { return s.vars.Len() }

// Vars returns the bound type-variables, in stored order.
func (s Substitution) Vars() []*types.Var {
	vs := make([]*types.Var, 0, s.vars.Len())
	s.vars.Range(func(_ int, t types.Type) bool {
		vs = append(vs, t.(*types.Var))
		return true
	})
	return vs
}

// Exprs returns the type expressions bound to each of Vars, in stored order.
func (s Substitution) Exprs() []types.Type { return s.exprs.Types() }

// Domain returns the set of bound type-variables.
func (s Substitution) Domain() types.VarSet {
	b := types.NewVarSetBuilder()
	s.vars.Range(func(_ int, t types.Type) bool {
		b.Add(t.(*types.Var))
		return true
	})
	return b.Build()
}

// Iterate over bindings in stored order.
// If f returns false, iteration will be stopped.
func (s Substitution) Range(f func(*types.Var, types.Type) bool) {
	s.vars.Range(func(i int, t types.Type) bool {
		return f(t.(*types.Var), s.exprs.Get(i))
	})
}

func (s Substitution) indexOf(tv *types.Var) int {
	index := -1
	s.vars.Range(func(i int, t types.Type) bool {
		if tv.Is(t.(*types.Var)) {
			index = i
			return false
		}
		return true
	})
	return index
}

// Lookup returns the type expression bound to tv, or tv itself if tv is unbound.
func (s Substitution) Lookup(tv *types.Var) types.Type {
	if tv == nil {
		return nil
	}
	if i := s.indexOf(tv); i >= 0 {
		return s.exprs.Get(i)
	}
	return tv
}

// Apply replaces each type-variable within t with its binding. The substitution is applied
// in a single pass; bindings introduced by the replacement are not substituted again.
func (s Substitution) Apply(t types.Type) types.Type {
	if s.IsEmpty() {
		return t
	}
	return mapVars(t, s.Lookup)
}

// mapVars rebuilds t with each type-variable replaced by f. Atomic types are shared.
func mapVars(t types.Type, f func(*types.Var) types.Type) types.Type {
	switch t := t.(type) {
	case *types.Atomic:
		return t

	case *types.Var:
		if t == nil {
			return t
		}
		return f(t)

	case *types.Proc:
		if t == nil {
			return t
		}
		var params []types.Type
		if len(t.Params) > 0 {
			params = make([]types.Type, len(t.Params))
			for i, param := range t.Params {
				params[i] = mapVars(param, f)
			}
		}
		return &types.Proc{Params: params, Return: mapVars(t.Return, f)}

	default:
		return t
	}
}

// Equal reports whether s and other contain the same bindings, in any order.
func (s Substitution) Equal(other Substitution) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	s.Range(func(tv *types.Var, t types.Type) bool {
		i := other.indexOf(tv)
		equal = i >= 0 && types.Equal(t, other.exprs.Get(i))
		return equal
	})
	return equal
}

// String returns a representation of the bindings in stored order: `{T1: number, T2: boolean}`
func (s Substitution) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	s.Range(func(tv *types.Var, t types.Type) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(tv.Name)
		sb.WriteString(": ")
		types.WriteTypeString(&sb, t)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
