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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyVarSet = VarSet{emptyMap}

// VarSet contains an immutable set of type-variables, keyed and sorted by name.
type VarSet struct {
	m *immutable.SortedMap
}

func NewVarSet() VarSet { return VarSet{emptyMap} }

// Create a VarSet with a single entry.
func SingletonVarSet(tv *Var) VarSet {
	return VarSet{emptyMap.Set(tv.Name, tv)}
}

// Get the number of type-variables in the set.
func (s VarSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Check if a type-variable with the same name is in the set.
func (s VarSet) Has(tv *Var) bool {
	if s.m == nil || tv == nil {
		return false
	}
	_, ok := s.m.Get(tv.Name)
	return ok
}

// Add a type-variable, without mutating the existing set.
func (s VarSet) Add(tv *Var) VarSet {
	m := s.m
	if m == nil {
		m = emptyMap
	}
	return VarSet{m.Set(tv.Name, tv)}
}

// Union returns a set containing the type-variables of both s and other.
func (s VarSet) Union(other VarSet) VarSet {
	if other.Len() == 0 {
		return s
	}
	b := s.Builder()
	other.Range(func(tv *Var) bool {
		b.Add(tv)
		return true
	})
	return b.Build()
}

// Iterate over type-variables in the set, sorted by name.
// If f returns false, iteration will be stopped.
func (s VarSet) Range(f func(*Var) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		if !f(v.(*Var)) {
			return
		}
	}
}

// Names returns the sorted names of type-variables in the set.
func (s VarSet) Names() []string {
	names := make([]string, 0, s.Len())
	s.Range(func(tv *Var) bool {
		names = append(names, tv.Name)
		return true
	})
	return names
}

// Convert the set to a builder for modification, without mutating the existing set.
func (s VarSet) Builder() *VarSetBuilder {
	imm := s.m
	if imm == nil {
		imm = emptyMap
	}
	return &VarSetBuilder{imm}
}

// VarSetBuilder accumulates type-variables before finalization. Each update is persistent,
// so sets previously built or used as a base are never modified.
type VarSetBuilder struct {
	m *immutable.SortedMap
}

func NewVarSetBuilder() *VarSetBuilder {
	return &VarSetBuilder{emptyMap}
}

// Get the number of type-variables in the builder.
func (b *VarSetBuilder) Len() int { return b.m.Len() }

// Check if a type-variable with the same name is in the builder.
func (b *VarSetBuilder) Has(tv *Var) bool {
	_, ok := b.m.Get(tv.Name)
	return ok
}

// Add a type-variable to the builder.
func (b *VarSetBuilder) Add(tv *Var) *VarSetBuilder {
	b.m = b.m.Set(tv.Name, tv)
	return b
}

// Finalize the builder into an immutable set.
func (b *VarSetBuilder) Build() VarSet { return VarSet{b.m} }
