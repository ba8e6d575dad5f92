package x86_64

import (
	"github.com/mikeakohn/magic-elf/go/models"
)

// Arch lists the registers of an x86_64 NT_PRSTATUS note in user_regs_struct
// order. These are the names magic_elf -modify_core accepts.
var Arch = models.NewArch("x86_64", 64, []string{
	"r15", "r14", "r13", "r12",
	"rbp", "rbx",
	"r11", "r10", "r9", "r8",
	"rax", "rcx", "rdx", "rsi", "rdi",
	"orig_rax", "rip", "cs", "eflags", "rsp", "ss",
	"fs_base", "gs_base",
	"ds", "es", "fs", "gs",
})
