package javacore

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mikeakohn/magic-elf/go/cmd"
	jc "github.com/mikeakohn/magic-elf/go/javacore"
)

func NewCmd() *cmd.JavaCmd {
	c := cmd.NewJavaCmd("<hs_err_pid.log> <corefile>", 2)
	var script *bool
	c.SetupFlags = func() error {
		script = c.Flags.Bool("script", c.Config.Script, "print a /bin/sh script that copies the core and patches the copy")
		return nil
	}
	c.RunCmd = func(args []string) error {
		c.Config.Script = *script
		e, err := jc.NewExtractor(c.Config)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		return e.Extract(f, args[1], c.Stdout)
	}
	return c
}

func Main(args []string) int {
	return NewCmd().Run(args)
}

func init() { cmd.Register("javacore", "print -modify_core commands from an hs_err log", Main) }
