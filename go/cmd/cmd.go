package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/mikeakohn/magic-elf/go/models"
)

// JavaCmd is the shared flag and config plumbing behind the javacore
// commands. Commands fill in SetupFlags and RunCmd.
type JavaCmd struct {
	Config *models.Config
	Flags  *flag.FlagSet

	// ArgUsage describes the positional arguments, e.g. "<hs_err_pid.log>".
	ArgUsage string
	NArgs    int

	SetupFlags func() error
	RunCmd     func(args []string) error

	ConfigDirs     configdir.ConfigDir
	Stdout, Stderr io.Writer
}

func NewJavaCmd(argUsage string, nargs int) *JavaCmd {
	return &JavaCmd{
		Flags:      flag.NewFlagSet("cli", flag.ContinueOnError),
		ArgUsage:   argUsage,
		NArgs:      nargs,
		ConfigDirs: configdir.New("magic-elf", "javacore"),
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError prints err, and its stack trace when running verbose.
func (c *JavaCmd) PrintError(err error) {
	fmt.Fprintf(c.Stderr, "Error: %s\n", err)
	if c.Config == nil || !c.Config.Verbose {
		return
	}
	if st, ok := err.(stackTracer); ok {
		fmt.Fprintf(c.Stderr, "%s\n", strings.Repeat("-", 40))
		for _, f := range st.StackTrace() {
			fmt.Fprintf(c.Stderr, "%n() | %s:%d\n", f, f, f)
			if fmt.Sprintf("%n", f) == "main" {
				break
			}
		}
	}
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Run parses argv and runs the command, returning the exit status.
// A wrong positional argument count prints usage to stdout and returns 0.
func (c *JavaCmd) Run(argv []string) int {
	config := models.DefaultConfig()
	config.Output = c.Stderr
	config.Color = isTerminal(c.Stdout)
	c.Config = config
	if _, err := config.LoadUserConfig(c.ConfigDirs); err != nil {
		c.PrintError(err)
		return 1
	}

	fs := c.Flags
	fs.SetOutput(c.Stderr)
	skip := fs.String("skip", strings.Join(config.Skip, ","), "comma separated registers to leave out")
	tool := fs.String("tool", config.Tool, "command name to print for each register")
	suffix := fs.String("suffix", config.Suffix, "suffix for the patched core's file name")
	verbose := fs.Bool("v", config.Verbose, "verbose output")
	color := fs.Bool("color", config.Color, "color register dumps (default on when stdout is a terminal)")
	outfile := fs.String("o", "", "redirect diagnostics to file (default stderr)")
	if c.SetupFlags != nil {
		if err := c.SetupFlags(); err != nil {
			c.PrintError(err)
			return 1
		}
	}
	fs.Usage = func() {
		fmt.Fprintf(c.Stdout, "Usage: %s [options] %s\n\nOptions:\n", argv[0], c.ArgUsage)
		models.PrintFlags(c.Stdout, fs)
	}
	if err := fs.Parse(argv[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != c.NArgs {
		fs.Usage()
		return 0
	}

	config.Skip = strings.Split(*skip, ",")
	config.Tool = *tool
	config.Suffix = *suffix
	config.Verbose = *verbose
	config.Color = *color
	if *outfile != "" {
		out, err := os.OpenFile(*outfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			c.PrintError(errors.Wrap(err, "opening diagnostics file"))
			return 1
		}
		defer out.Close()
		config.Output = out
	}

	if err := c.RunCmd(fs.Args()); err != nil {
		c.PrintError(err)
		return 1
	}
	return 0
}
