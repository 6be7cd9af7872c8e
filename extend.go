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
	"github.com/wdamron/subst/internal/util"
	"github.com/wdamron/subst/types"
)

// Extend returns a substitution which additionally binds tv to t.
//
// The binding is checked for circularity, then tv is substituted with t within every existing
// binding. If tv is already bound, its existing (rewritten) binding is kept in place; otherwise
// the new binding is placed first. The resulting bindings are checked again before returning.
func (s Substitution) Extend(tv *types.Var, t types.Type) (Substitution, error) {
	single, err := New([]*types.Var{tv}, []types.Type{t})
	if err != nil {
		return Substitution{}, err
	}
	vars, exprs := s.vars, s.exprs.Map(single.Apply)
	if s.indexOf(tv) < 0 {
		vars, exprs = vars.Prepend(tv), exprs.Prepend(t)
	}
	return newSubstitution(vars, exprs)
}

// Combine composes two substitutions, such that applying the result is equivalent to applying
// s1 and then s2. The bindings of s2 are folded into s1 with Extend, in stored order. If any
// extension fails, the error is returned with an empty substitution.
func Combine(s1, s2 Substitution) (Substitution, error) {
	if s1.IsEmpty() {
		return s2, nil
	}
	if s2.IsEmpty() {
		return s1, nil
	}
	result := s1
	var err error
	s2.Range(func(tv *types.Var, t types.Type) bool {
		result, err = result.Extend(tv, t)
		return err == nil
	})
	if err != nil {
		return Substitution{}, err
	}
	return result, nil
}

// Normalize resolves bindings which refer to other bound type-variables, returning an idempotent
// substitution: applying it once yields the same result as applying s until a fixed point is
// reached. Stored order is preserved. If the bindings of s form a cycle, a CircularBindingError
// is returned for one of the type-variables in the cycle.
func Normalize(s Substitution) (Substitution, error) {
	if s.IsEmpty() {
		return s, nil
	}
	vars, exprs := s.Vars(), s.Exprs()

	// edge i -> j: the binding of vars[i] refers to vars[j]
	deps := util.NewGraph(len(vars))
	for i, t := range exprs {
		types.FreeVars(t).Range(func(tv *types.Var) bool {
			if j := s.indexOf(tv); j >= 0 {
				deps.AddEdge(i, j)
			}
			return true
		})
	}

	resolved := make([]types.Type, len(exprs))
	sccs := deps.SCC()
	// dependencies are listed after their dependents
	for k := len(sccs) - 1; k >= 0; k-- {
		scc := sccs[k]
		i := scc[0]
		if deps.Cyclic(scc) {
			return Substitution{}, circularBinding(s, vars[i], exprs[i], len(scc))
		}
		resolved[i] = mapVars(exprs[i], func(tv *types.Var) types.Type {
			if j := s.indexOf(tv); j >= 0 {
				return resolved[j]
			}
			return tv
		})
	}
	return New(vars, resolved)
}

// circularBinding expands t with s until tv occurs within it. Every type-variable on a cycle
// of length n reappears within n expansions.
func circularBinding(s Substitution, tv *types.Var, t types.Type, n int) error {
	for i := 0; i < n && !types.Occurs(tv, t); i++ {
		t = s.Apply(t)
	}
	return &CircularBindingError{Var: tv, Type: t}
}
