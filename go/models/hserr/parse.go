package hserr

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	tidMarker  = "tid="
	regsHeader = "Registers:"
	maxLine    = 1 << 20
)

// ScanState tracks where Parse is relative to the register block.
type ScanState int

const (
	Outside ScanState = iota
	InRegisters
	// Done means the blank line closing the register block was seen and
	// nothing after it was read.
	Done
)

func (s ScanState) String() string {
	switch s {
	case Outside:
		return "outside"
	case InRegisters:
		return "registers"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

type Report struct {
	Tids  []string
	Regs  *RegTable
	State ScanState
	// Lines counts lines read, including the one that ended the scan.
	Lines int
}

// Tid returns the thread id register commands are keyed by: the last one seen.
func (r *Report) Tid() (string, bool) {
	if len(r.Tids) == 0 {
		return "", false
	}
	return r.Tids[len(r.Tids)-1], true
}

// ParseTid pulls the thread id out of a line containing "tid=".
// "  tid=0x00007f12, nid=42" yields "0x00007f12".
func ParseTid(line string) (string, error) {
	i := strings.Index(line, tidMarker)
	if i < 0 {
		return "", &FormatError{Text: line, Reason: "no tid= marker"}
	}
	seg := strings.TrimSpace(strings.SplitN(line[i:], ",", 2)[0])
	parts := strings.Split(seg, "=")
	if len(parts) != 2 {
		return "", &FormatError{Text: seg, Reason: "tid segment needs exactly one '='"}
	}
	return strings.TrimSpace(parts[1]), nil
}

// ParseRegLine splits a register block line like "RAX=0x1, RBX=0x2".
func ParseRegLine(line string) ([]Reg, error) {
	tokens := strings.Split(line, ",")
	regs := make([]Reg, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(tok, "=")
		if len(parts) != 2 {
			return nil, &FormatError{Text: tok, Reason: "register token needs exactly one '='"}
		}
		regs = append(regs, Reg{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])})
	}
	return regs, nil
}

// Parse scans an hs_err log for thread ids and the register block.
// onTid, if set, is called as soon as each thread id is found, before any
// later line is read. The scan ends at the first blank line inside the
// register block, or at EOF.
func Parse(r io.Reader, onTid func(tid string) error) (*Report, error) {
	rep := &Report{Regs: NewRegTable()}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)
	for rep.State != Done && scanner.Scan() {
		rep.Lines++
		line := scanner.Text()
		if strings.Contains(line, tidMarker) {
			tid, err := ParseTid(line)
			if err != nil {
				return nil, lineError(err, rep.Lines)
			}
			rep.Tids = append(rep.Tids, tid)
			if onTid != nil {
				if err := onTid(tid); err != nil {
					return nil, err
				}
			}
			continue
		}
		if strings.HasPrefix(line, regsHeader) {
			rep.State = InRegisters
			continue
		}
		if rep.State != InRegisters {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			rep.State = Done
			continue
		}
		regs, err := ParseRegLine(line)
		if err != nil {
			return nil, lineError(err, rep.Lines)
		}
		for _, reg := range regs {
			rep.Regs.Set(reg.Name, reg.Val)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading hs_err log")
	}
	return rep, nil
}

func lineError(err error, line int) error {
	if fe, ok := err.(*FormatError); ok {
		fe.Line = line
	}
	return errors.WithStack(err)
}
