package models

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mikeakohn/magic-elf/go/models/hserr"
)

var testArch = NewArch("test", 64, []string{"rax", "rbx", "rcx", "rip", "eflags"})

func TestRegDump(t *testing.T) {
	regs := []hserr.Reg{
		{Name: "RAX", Val: "0x1"}, {Name: "RBX", Val: "0x2"}, {Name: "RCX", Val: "0x3"},
		{Name: "RDX", Val: "0x4"}, {Name: "RIP", Val: "0x10"}, {Name: "EFLAGS", Val: "0x246"},
	}
	dump := NewRegDump(regs, hserr.NewSkipList(hserr.DefaultSkip), testArch)
	// six registers: one full row of four down the columns, then the remainder
	want := strings.Join([]string{
		"    RAX 0x1       RBX 0x2       RCX 0x3   ?   RDX 0x4",
		"    RIP 0x10  -EFLAGS 0x246",
		"",
	}, "\n")
	if diff := cmp.Diff(want, dump.String(false)); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
	unknown := dump.Unknown()
	if len(unknown) != 1 || unknown[0].Name != "RDX" {
		t.Errorf("Unknown() = %v", unknown)
	}
	if !strings.Contains(dump.String(true), "EFLAGS") {
		t.Error("color dump dropped a register")
	}
}

func TestRegDumpEmpty(t *testing.T) {
	if s := NewRegDump(nil, nil, testArch).String(false); s != "" {
		t.Errorf("empty dump = %q", s)
	}
}
