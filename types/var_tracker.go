package types

import "strconv"

// VarTracker allocates fresh type-variables named with a prefix and an increasing counter.
type VarTracker struct {
	// Prefix defaults to "T".
	Prefix string
	NextId int
}

// New allocates a fresh type-variable: T1, T2, ...
func (vt *VarTracker) New() *Var {
	vt.NextId++
	prefix := vt.Prefix
	if prefix == "" {
		prefix = "T"
	}
	return &Var{Name: prefix + strconv.Itoa(vt.NextId)}
}

// NewList allocates count fresh type-variables.
func (vt *VarTracker) NewList(count int) []*Var {
	vs := make([]*Var, count)
	for i := range vs {
		vs[i] = vt.New()
	}
	return vs
}

func (vt *VarTracker) Reset() { vt.NextId = 0 }
