package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable, ordered list of types. The zero value is an empty list.
type TypeList struct {
	l *immutable.List
}

func NewTypeList() TypeList { return TypeList{emptyList} }

func SingletonTypeList(t Type) TypeList {
	return TypeList{emptyList.Append(t)}
}

func NewTypeListFrom(ts []Type) TypeList {
	b := NewTypeListBuilder()
	for _, t := range ts {
		b.Append(t)
	}
	return b.Build()
}

func (l TypeList) list() *immutable.List {
	if l.l == nil {
		return emptyList
	}
	return l.l
}

func (l TypeList) Len() int                      { return l.list().Len() }
func (l TypeList) Get(i int) Type                { return asType(l.list().Get(i)) }
func (l TypeList) Set(i int, t Type) TypeList    { return TypeList{l.list().Set(i, t)} }
func (l TypeList) Append(t Type) TypeList        { return TypeList{l.list().Append(t)} }
func (l TypeList) Prepend(t Type) TypeList       { return TypeList{l.list().Prepend(t)} }
func (l TypeList) Slice(start, end int) TypeList { return TypeList{l.list().Slice(start, end)} }

// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, Type) bool) {
	iter := l.list().Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, asType(v)) {
			return
		}
	}
}

// Map returns a new list containing the result of f for each type in the list.
func (l TypeList) Map(f func(Type) Type) TypeList {
	b := NewTypeListBuilder()
	l.Range(func(_ int, t Type) bool {
		b.Append(f(t))
		return true
	})
	return b.Build()
}

// Slice of the types in the list, in order.
func (l TypeList) Types() []Type {
	ts := make([]Type, 0, l.Len())
	l.Range(func(_ int, t Type) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

// Convert the list to a builder for appending, without mutating the existing list.
func (l TypeList) Builder() *TypeListBuilder {
	return &TypeListBuilder{l.list()}
}

// nil entries are stored as untyped nil and must be read back as a nil Type.
func asType(v interface{}) Type {
	if v == nil {
		return nil
	}
	return v.(Type)
}

// TypeListBuilder accumulates types before finalization. Each update is persistent, so lists
// previously built or used as a base are never modified.
type TypeListBuilder struct {
	l *immutable.List
}

func NewTypeListBuilder() *TypeListBuilder {
	return &TypeListBuilder{emptyList}
}

func (b *TypeListBuilder) Len() int          { return b.l.Len() }
func (b *TypeListBuilder) Append(t Type)     { b.l = b.l.Append(t) }
func (b *TypeListBuilder) Set(i int, t Type) { b.l = b.l.Set(i, t) }
func (b *TypeListBuilder) Build() TypeList   { return TypeList{b.l} }
