package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shibukawa/configdir"
)

func TestConfigLoad(t *testing.T) {
	c := DefaultConfig()
	if err := c.Load(strings.NewReader("skip: [EFLAGS, RIP]\nsuffix: .patched\n")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"EFLAGS", "RIP"}, c.Skip); diff != "" {
		t.Errorf("skip mismatch (-want +got):\n%s", diff)
	}
	if c.Tool != "magic_elf" || c.Arch != "x86_64" {
		t.Errorf("defaults lost: %+v", c)
	}
	if got := c.CorePath("core.1234"); got != "core.1234.patched" {
		t.Errorf("CorePath = %q", got)
	}
	if !c.SkipList().Has("RIP") || c.SkipList().Has("ERR") {
		t.Errorf("SkipList = %v", c.SkipList())
	}
}

func TestConfigLoadEmpty(t *testing.T) {
	c := DefaultConfig()
	if err := c.Load(strings.NewReader("")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), c, cmpopts.IgnoreFields(Config{}, "Output")); diff != "" {
		t.Errorf("empty config changed defaults (-want +got):\n%s", diff)
	}
}

func TestConfigLoadUnknownKey(t *testing.T) {
	if err := DefaultConfig().Load(strings.NewReader("colour: true\n")); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestLoadUserConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("tool: /opt/bin/magic_elf\nscript: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dirs := configdir.New("magic-elf-test", "javacore")
	dirs.LocalPath = dir
	c := DefaultConfig()
	path, err := c.LoadUserConfig(dirs)
	if err != nil {
		t.Fatal(err)
	}
	if path != dir {
		t.Errorf("loaded from %q, want %q", path, dir)
	}
	if c.Tool != "/opt/bin/magic_elf" || !c.Script {
		t.Errorf("config not applied: %+v", c)
	}
}
