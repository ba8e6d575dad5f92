package main

import (
	"os"

	"github.com/mikeakohn/magic-elf/go/cmd/javacore"
)

func main() {
	os.Exit(javacore.Main(os.Args))
}
