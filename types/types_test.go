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

package types_test

import (
	"testing"

	. "github.com/wdamron/subst/construct"

	"github.com/wdamron/subst/types"
)

func TestTypeString(t *testing.T) {
	number, boolean := TNumber(), TBoolean()
	T1, T2 := TVar("T1"), TVar("T2")

	cases := []struct {
		t      types.Type
		expect string
	}{
		{number, "number"},
		{T1, "T1"},
		{TProc0(TVoid()), "() -> void"},
		{TProc1(number, boolean), "number -> boolean"},
		{TProc2(T1, T2, T1), "(T1, T2) -> T1"},
		{TProc1(TProc1(number, number), number), "(number -> number) -> number"},
		{TProc1(number, TProc1(boolean, TVoid())), "number -> boolean -> void"},
		{TProc2(TProc1(number, number), boolean, TVoid()), "(number -> number, boolean) -> void"},
		{nil, "<nil>"},
		{TProc1(nil, number), "<nil> -> number"},
	}
	for _, c := range cases {
		if s := types.TypeString(c.t); s != c.expect {
			t.Fatalf("expected %q, found %q", c.expect, s)
		}
	}

	if s := types.TypeListString([]types.Type{number, T1}); s != "number, T1" {
		t.Fatalf("type list: %s", s)
	}
}

func TestEqual(t *testing.T) {
	a := TProc2(TVar("T1"), TNumber(), TProc1(TVar("T2"), TBoolean()))
	b := TProc2(TVar("T1"), TNumber(), TProc1(TVar("T2"), TBoolean()))
	if !types.Equal(a, b) {
		t.Fatalf("expected %s to equal %s", types.TypeString(a), types.TypeString(b))
	}

	unequal := []types.Type{
		TProc2(TVar("T1"), TNumber(), TProc1(TVar("T3"), TBoolean())),
		TProc1(TVar("T1"), TProc1(TVar("T2"), TBoolean())),
		TProc2(TVar("T1"), TBoolean(), TProc1(TVar("T2"), TBoolean())),
		TVar("T1"),
		TNumber(),
		nil,
	}
	for _, u := range unequal {
		if types.Equal(a, u) {
			t.Fatalf("expected %s to differ from %s", types.TypeString(a), types.TypeString(u))
		}
	}

	if types.Equal(TVar("number"), TNumber()) {
		t.Fatalf("type-variables and atomic types with the same name must differ")
	}
	if !types.Equal(nil, nil) {
		t.Fatalf("expected nil types to be equal")
	}
}

func TestPredicates(t *testing.T) {
	if !types.IsAtomic(TNumber()) || types.IsAtomic(TVar("T1")) {
		t.Fatalf("IsAtomic")
	}
	if !types.IsVar(TVar("T1")) || types.IsVar(TNumber()) || types.IsVar(nil) {
		t.Fatalf("IsVar")
	}
	if !types.IsProc(TProc0(TVoid())) || types.IsProc(TVoid()) {
		t.Fatalf("IsProc")
	}
	if !types.IsAtomicName("boolean") || types.IsAtomicName("T1") {
		t.Fatalf("IsAtomicName")
	}
	if TProc2(TNumber(), TNumber(), TNumber()).Arity() != 2 {
		t.Fatalf("Arity")
	}
	if !TVar("T1").Is(TVar("T1")) || TVar("T1").Is(TVar("T2")) || TVar("T1").Is(nil) {
		t.Fatalf("Is")
	}
}

func TestOccursAndFreeVars(t *testing.T) {
	T1, T2, T3 := TVar("T1"), TVar("T2"), TVar("T3")
	ty := TProc2(T2, TProc1(T1, TNumber()), T2)

	if !types.Occurs(T1, ty) || !types.Occurs(T2, ty) || types.Occurs(T3, ty) {
		t.Fatalf("unexpected occurrences in %s", types.TypeString(ty))
	}
	if types.Occurs(T1, TNumber()) || types.Occurs(T1, nil) {
		t.Fatalf("unexpected occurrence in atomic type")
	}

	fvs := types.FreeVars(ty)
	if fvs.Len() != 2 || !fvs.Has(T1) || !fvs.Has(T2) || fvs.Has(T3) {
		t.Fatalf("free vars: %v", fvs.Names())
	}
	names := fvs.Names()
	if names[0] != "T1" || names[1] != "T2" {
		t.Fatalf("expected sorted names, found %v", names)
	}
	if types.FreeVars(TNumber()).Len() != 0 {
		t.Fatalf("expected no free vars")
	}

	u := fvs.Union(types.SingletonVarSet(T3))
	if u.Len() != 3 || fvs.Len() != 2 {
		t.Fatalf("union must not mutate the existing set")
	}
	if s := types.EmptyVarSet.Add(T3); s.Len() != 1 || types.EmptyVarSet.Len() != 0 {
		t.Fatalf("add must not mutate the existing set")
	}
	var zero types.VarSet
	if zero.Len() != 0 || zero.Has(T1) || zero.Add(T1).Len() != 1 {
		t.Fatalf("zero set should be usable")
	}
}

func TestTypeList(t *testing.T) {
	var l types.TypeList
	if l.Len() != 0 {
		t.Fatalf("zero list should be empty")
	}
	l = l.Append(TNumber()).Prepend(TVar("T1"))
	if l.Len() != 2 || types.TypeString(l.Get(0)) != "T1" || types.TypeString(l.Get(1)) != "number" {
		t.Fatalf("list: %s", types.TypeListString(l.Types()))
	}
	m := l.Set(1, TBoolean())
	if types.TypeString(l.Get(1)) != "number" || types.TypeString(m.Get(1)) != "boolean" {
		t.Fatalf("set must not mutate the existing list")
	}
	wrapped := l.Map(func(t types.Type) types.Type { return TProc0(t) })
	if s := types.TypeListString(wrapped.Types()); s != "() -> T1, () -> number" {
		t.Fatalf("mapped: %s", s)
	}
	if s := types.TypeListString(types.NewTypeListFrom([]types.Type{TVoid(), nil}).Types()); s != "void, <nil>" {
		t.Fatalf("from slice: %s", s)
	}
}

func TestVarTracker(t *testing.T) {
	var vt types.VarTracker
	a, b := vt.New(), vt.New()
	if a.Name != "T1" || b.Name != "T2" {
		t.Fatalf("fresh vars: %s, %s", a.Name, b.Name)
	}
	vs := vt.NewList(2)
	if len(vs) != 2 || vs[0].Name != "T3" || vs[1].Name != "T4" {
		t.Fatalf("fresh var list: %v", vs)
	}
	vt.Reset()
	if v := vt.New(); v.Name != "T1" {
		t.Fatalf("after reset: %s", v.Name)
	}
	named := types.VarTracker{Prefix: "a"}
	if v := named.New(); v.Name != "a1" {
		t.Fatalf("prefixed: %s", v.Name)
	}
}
