package models

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"gopkg.in/yaml.v3"

	"github.com/mikeakohn/magic-elf/go/models/hserr"
)

const ConfigFile = "javacore.yml"

type Config struct {
	Arch    string   `yaml:"arch"`
	Color   bool     `yaml:"color"`
	Script  bool     `yaml:"script"`
	Skip    []string `yaml:"skip"`
	Suffix  string   `yaml:"suffix"`
	Tool    string   `yaml:"tool"`
	Verbose bool     `yaml:"verbose"`

	// Output receives diagnostics, never command text.
	Output io.Writer `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Arch:   "x86_64",
		Skip:   append([]string(nil), hserr.DefaultSkip...),
		Suffix: ".modified",
		Tool:   "magic_elf",
		Output: os.Stderr,
	}
}

// Load overlays YAML settings onto c. Keys missing from r keep their values.
func (c *Config) Load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(err, "decoding config")
	}
	return nil
}

// LoadUserConfig finds javacore.yml in the local or per-user config folders
// and loads the first one. It returns the folder used, or "" if none exists.
func (c *Config) LoadUserConfig(dirs configdir.ConfigDir) (string, error) {
	folder := dirs.QueryFolderContainsFile(ConfigFile)
	if folder == nil {
		return "", nil
	}
	data, err := folder.ReadFile(ConfigFile)
	if err != nil {
		return "", errors.Wrap(err, "reading config")
	}
	return folder.Path, c.Load(bytes.NewReader(data))
}

func (c *Config) SkipList() hserr.SkipList {
	return hserr.NewSkipList(c.Skip)
}

func (c *Config) CorePath(core string) string {
	return core + c.Suffix
}
