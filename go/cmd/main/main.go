package main

import (
	"github.com/mikeakohn/magic-elf/go/cmd"

	_ "github.com/mikeakohn/magic-elf/go/cmd/javacore"
	_ "github.com/mikeakohn/magic-elf/go/cmd/regs"
)

func main() { cmd.Main() }
