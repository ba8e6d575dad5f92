package hserr

import (
	"sort"

	"github.com/lunixbochs/fvbommel-util/sortorder"
)

// Reg is a register as written in the log. Val is never parsed.
type Reg struct {
	Name string
	Val  string
}

type regList []Reg

func (r regList) Len() int           { return len(r) }
func (r regList) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r regList) Less(i, j int) bool { return sortorder.NaturalLess(r[i].Name, r[j].Name) }

// RegTable maps register names to values, remembering the order names were
// first seen. Setting an existing name replaces its value in place.
type RegTable struct {
	regs  []Reg
	index map[string]int
}

func NewRegTable() *RegTable {
	return &RegTable{index: make(map[string]int)}
}

func (t *RegTable) Set(name, val string) {
	if i, ok := t.index[name]; ok {
		t.regs[i].Val = val
		return
	}
	t.index[name] = len(t.regs)
	t.regs = append(t.regs, Reg{name, val})
}

func (t *RegTable) Get(name string) (string, bool) {
	if i, ok := t.index[name]; ok {
		return t.regs[i].Val, true
	}
	return "", false
}

func (t *RegTable) Len() int { return len(t.regs) }

// Items returns the registers in insertion order.
func (t *RegTable) Items() []Reg {
	ret := make([]Reg, len(t.regs))
	copy(ret, t.regs)
	return ret
}

// Sorted returns the registers in natural order (R8 before R10).
func (t *RegTable) Sorted() []Reg {
	ret := regList(t.Items())
	sort.Sort(ret)
	return ret
}
