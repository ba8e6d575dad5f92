package models

import (
	"strings"
)

// Arch is the register layout of a core file's prstatus note.
type Arch struct {
	Name string
	Bits int
	Regs []string

	index map[string]int
}

func NewArch(name string, bits int, regs []string) *Arch {
	a := &Arch{Name: name, Bits: bits, Regs: regs, index: make(map[string]int, len(regs))}
	for i, r := range regs {
		if _, ok := a.index[r]; ok {
			panic("Duplicate register " + r)
		}
		a.index[r] = i
	}
	return a
}

// RegIndex looks up a register by name, ignoring case.
func (a *Arch) RegIndex(name string) (int, bool) {
	i, ok := a.index[strings.ToLower(name)]
	return i, ok
}

// RegOffset is the byte offset of name within the register set.
func (a *Arch) RegOffset(name string) (uint64, bool) {
	i, ok := a.RegIndex(name)
	if !ok {
		return 0, false
	}
	return uint64(i * a.Bits / 8), true
}
