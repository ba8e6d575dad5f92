package regs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shibukawa/configdir"
)

const testLog = `"main" tid=0x00007f3c5c00b800, nid=0x1093
Registers:
RAX=0x0000000000000000, R10=0x000000000000000a, R8 =0x0000000000000008
EFLAGS=0x0000000000010246, CSGSFS=0x002b000000000033

`

func run(t *testing.T, args ...string) (int, string) {
	path := filepath.Join(t.TempDir(), "hs_err.log")
	if err := os.WriteFile(path, []byte(testLog), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	c := NewCmd()
	c.Stdout, c.Stderr = &stdout, &stderr
	c.ConfigDirs = configdir.New("magic-elf-test", "regs-test")
	c.ConfigDirs.LocalPath = t.TempDir()
	status := c.Run(append(append([]string{"regs"}, args...), path))
	if status != 0 {
		t.Fatalf("status %d: %s", status, stderr.String())
	}
	return status, stdout.String()
}

func TestRegsDump(t *testing.T) {
	_, out := run(t, "-color=false", "-sort")
	if !strings.HasPrefix(out, "tid 0x00007f3c5c00b800, 5 registers\n") {
		t.Errorf("header:\n%s", out)
	}
	if strings.Index(out, "R8") > strings.Index(out, "R10") {
		t.Errorf("-sort should put R8 before R10:\n%s", out)
	}
	if !strings.Contains(out, "-EFLAGS") || !strings.Contains(out, "-CSGSFS") {
		t.Errorf("skipped registers not marked:\n%s", out)
	}
}

func TestRegsTable(t *testing.T) {
	_, out := run(t, "-table")
	for _, s := range []string{"REGISTER", "RAX", "0x50", "skip"} {
		if !strings.Contains(out, s) {
			t.Errorf("table missing %q:\n%s", s, out)
		}
	}
}
