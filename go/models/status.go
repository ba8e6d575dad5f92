package models

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/mikeakohn/magic-elf/go/models/hserr"
)

var chSkip = ansi.ColorCode("black+h:default")
var chUnknown = ansi.ColorCode("red:default")

func colorPad(s, color string, pad int) string {
	length := len(s)
	s = color + s + ansi.Reset
	if length < pad {
		s = strings.Repeat(" ", pad-length) + s
	}
	return s
}

// RegStatus is one parsed register and what javacore will do with it.
type RegStatus struct {
	hserr.Reg
	Skipped bool
	// Slot is the register's index in the core's register set, or -1.
	Slot int
}

func (r *RegStatus) mark() string {
	switch {
	case r.Skipped:
		return "-"
	case r.Slot < 0:
		return "?"
	default:
		return " "
	}
}

func (r *RegStatus) String(namePad, valPad int, color bool) string {
	if color {
		name := fmt.Sprintf("%*s", namePad, r.Name)
		switch {
		case r.Skipped:
			name = colorPad(r.Name, chSkip, namePad)
		case r.Slot < 0:
			name = colorPad(r.Name, chUnknown, namePad)
		}
		return fmt.Sprintf(" %s %-*s", name, valPad, r.Val)
	}
	return fmt.Sprintf("%s%*s %-*s", r.mark(), namePad, r.Name, valPad, r.Val)
}

type RegDump struct {
	Regs []*RegStatus
}

// NewRegDump classifies regs against the skip list and the core layout.
func NewRegDump(regs []hserr.Reg, skip hserr.SkipList, arch *Arch) *RegDump {
	out := make([]*RegStatus, 0, len(regs))
	for _, r := range regs {
		slot, ok := arch.RegIndex(r.Name)
		if !ok {
			slot = -1
		}
		out = append(out, &RegStatus{Reg: r, Skipped: skip.Has(r.Name), Slot: slot})
	}
	return &RegDump{Regs: out}
}

// Unknown lists registers that would be emitted but have no core slot.
func (d *RegDump) Unknown() []*RegStatus {
	var ret []*RegStatus
	for _, r := range d.Regs {
		if !r.Skipped && r.Slot < 0 {
			ret = append(ret, r)
		}
	}
	return ret
}

func (d *RegDump) String(color bool) string {
	if len(d.Regs) == 0 {
		return ""
	}
	namePad, valPad := 0, 0
	for _, r := range d.Regs {
		if len(r.Name) > namePad {
			namePad = len(r.Name)
		}
		if len(r.Val) > valPad {
			valPad = len(r.Val)
		}
	}
	var out []string
	printRow := func(regs []*RegStatus) {
		cells := make([]string, 0, len(regs))
		for _, r := range regs {
			cells = append(cells, r.String(namePad, valPad, color))
		}
		if len(cells) > 0 {
			out = append(out, strings.TrimRight(strings.Join(cells, " "), " ")+"\n")
		}
	}
	// print column-wise output
	regs := d.Regs
	cols := 4
	rows := len(regs) / cols
	row := make([]*RegStatus, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row[j] = regs[j*rows+i]
		}
		printRow(row)
	}
	printRow(regs[rows*cols:])
	return strings.Join(out, "")
}
