package regs

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/mikeakohn/magic-elf/go/arch"
	"github.com/mikeakohn/magic-elf/go/cmd"
	"github.com/mikeakohn/magic-elf/go/models"
	"github.com/mikeakohn/magic-elf/go/models/hserr"
)

func printTable(w io.Writer, dump *models.RegDump, a *models.Arch) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Register", "Value", "Slot", "Offset", "Action"})
	for _, r := range dump.Regs {
		slot, offset, action := "-", "-", "patch"
		if r.Slot >= 0 {
			off, _ := a.RegOffset(r.Name)
			slot = strconv.Itoa(r.Slot)
			offset = fmt.Sprintf("%#x", off)
		} else {
			action = "patch (unknown slot)"
		}
		if r.Skipped {
			action = "skip"
		}
		table.Append([]string{r.Name, r.Val, slot, offset, action})
	}
	table.Render()
}

func NewCmd() *cmd.JavaCmd {
	c := cmd.NewJavaCmd("<hs_err_pid.log>", 1)
	var sorted, asTable *bool
	c.SetupFlags = func() error {
		sorted = c.Flags.Bool("sort", false, "list registers in natural order instead of log order")
		asTable = c.Flags.Bool("table", false, "print a table with core slots and offsets")
		return nil
	}
	c.RunCmd = func(args []string) error {
		a, err := arch.GetArch(c.Config.Arch)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		rep, err := hserr.Parse(f, nil)
		if err != nil {
			return err
		}
		if tid, ok := rep.Tid(); ok {
			fmt.Fprintf(c.Stdout, "tid %s, %d registers\n", tid, rep.Regs.Len())
		} else {
			fmt.Fprintf(c.Stdout, "no tid, %d registers\n", rep.Regs.Len())
		}
		items := rep.Regs.Items()
		if *sorted {
			items = rep.Regs.Sorted()
		}
		dump := models.NewRegDump(items, c.Config.SkipList(), a)
		if *asTable {
			printTable(c.Stdout, dump, a)
		} else {
			fmt.Fprint(c.Stdout, dump.String(c.Config.Color))
		}
		return nil
	}
	return c
}

func Main(args []string) int {
	return NewCmd().Run(args)
}

func init() { cmd.Register("regs", "show the register block of an hs_err log", Main) }
