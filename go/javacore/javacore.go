// Package javacore turns the register block of a JVM hs_err crash log into
// magic_elf -modify_core command lines for the matching core file.
//
// Commands are only ever printed. Nothing here opens or modifies the core.
package javacore

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/mikeakohn/magic-elf/go/arch"
	"github.com/mikeakohn/magic-elf/go/models"
	"github.com/mikeakohn/magic-elf/go/models/hserr"
)

var ErrNoTid = errors.New("register block has no thread id (no tid= line before it)")

type Command struct {
	Tool string
	Tid  string
	Reg  string
	Val  string
	Core string
}

func (c Command) String() string {
	return strings.Join([]string{c.Tool, "-modify_core", c.Tid, c.Reg, c.Val, c.Core}, " ")
}

// Commands builds one command per register that isn't skipped, in the order
// registers first appeared in the log.
func Commands(rep *hserr.Report, core string, cfg *models.Config) ([]Command, error) {
	regs := cfg.SkipList().Filter(rep.Regs.Items())
	if len(regs) == 0 {
		return nil, nil
	}
	tid, ok := rep.Tid()
	if !ok {
		return nil, errors.WithStack(ErrNoTid)
	}
	cmds := make([]Command, 0, len(regs))
	for _, r := range regs {
		cmds = append(cmds, Command{
			Tool: cfg.Tool,
			Tid:  tid,
			Reg:  strings.ToLower(r.Name),
			Val:  r.Val,
			Core: cfg.CorePath(core),
		})
	}
	return cmds, nil
}

type Extractor struct {
	cfg    *models.Config
	arch   *models.Arch
	logger log.Logger
}

func NewExtractor(cfg *models.Config) (*Extractor, error) {
	a, err := arch.GetArch(cfg.Arch)
	if err != nil {
		return nil, err
	}
	return &Extractor{cfg: cfg, arch: a, logger: cfg.NewLogger()}, nil
}

// Extract reads an hs_err log from r and writes to w each thread id as it is
// found, followed by the register commands for core. Output written before
// an error is left in place.
func (e *Extractor) Extract(r io.Reader, core string, w io.Writer) error {
	cfg := e.cfg
	if cfg.Script {
		if _, err := fmt.Fprintf(w, "#!/bin/sh\nset -e\ncp %s %s\n", core, cfg.CorePath(core)); err != nil {
			return errors.WithStack(err)
		}
	}
	rep, err := hserr.Parse(r, func(tid string) error {
		line := tid
		if cfg.Script {
			line = "# tid " + tid
		}
		_, err := fmt.Fprintln(w, line)
		return errors.WithStack(err)
	})
	if err != nil {
		return err
	}
	level.Debug(e.logger).Log("msg", "parsed hs_err log", "lines", rep.Lines, "registers", rep.Regs.Len(), "state", rep.State)
	if rep.State == hserr.Outside {
		level.Warn(e.logger).Log("msg", "no Registers: block found")
	}
	skip := cfg.SkipList()
	for _, r := range rep.Regs.Items() {
		if skip.Has(r.Name) {
			level.Debug(e.logger).Log("msg", "skipping register", "reg", r.Name)
		}
	}
	cmds, err := Commands(rep, core, cfg)
	if err != nil {
		return err
	}
	for _, c := range cmds {
		if _, ok := e.arch.RegIndex(c.Reg); !ok {
			level.Warn(e.logger).Log("msg", "register has no core slot", "reg", c.Reg, "arch", e.arch.Name)
		}
		if _, err := fmt.Fprintln(w, c); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// ExtractLines runs the default extraction over log lines and returns the
// output lines. On error it returns whatever was emitted before the failure.
func ExtractLines(lines []string, core string) ([]string, error) {
	cfg := models.DefaultConfig()
	cfg.Output = io.Discard
	e, err := NewExtractor(cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = e.Extract(strings.NewReader(strings.Join(lines, "\n")), core, &buf)
	if buf.Len() == 0 {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), err
}
