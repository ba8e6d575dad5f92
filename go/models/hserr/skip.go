package hserr

import (
	"strings"
)

// DefaultSkip lists registers hs_err reports that -modify_core can't patch.
var DefaultSkip = []string{"EFLAGS", "CSGSFS", "ERR", "TRAPNO"}

type SkipList map[string]bool

func NewSkipList(names []string) SkipList {
	s := make(SkipList, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			s[name] = true
		}
	}
	return s
}

// ParseSkipList reads a comma separated list such as "EFLAGS,ERR".
func ParseSkipList(list string) SkipList {
	return NewSkipList(strings.Split(list, ","))
}

func (s SkipList) Has(name string) bool {
	return s[name]
}

// Filter returns regs in their original order, minus skipped names.
func (s SkipList) Filter(regs []Reg) []Reg {
	ret := make([]Reg, 0, len(regs))
	for _, r := range regs {
		if !s.Has(r.Name) {
			ret = append(ret, r)
		}
	}
	return ret
}
