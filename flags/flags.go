// Package flags provides support for slist CLI args
package flags

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"hop.computer/linkedlist/command"
	"hop.computer/linkedlist/config"
	"hop.computer/linkedlist/display"
)

// ErrMissingSeed is returned when neither the flags nor the scenario provide a
// seed value for the list.
var ErrMissingSeed = errors.New("missing seed value: use -s or set seed in the scenario file")

// Flags holds CLI arguments for slist.
type Flags struct {
	ScenarioPath string
	Seed         string
	Color        string
	Interactive  bool // read further commands from the terminal
	Verbose      bool // log every command

	Steps []string // commands given after the flags, separated by ';'
}

func defineFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.ScenarioPath, "f", "", "path to a TOML scenario file")
	fs.StringVar(&f.Seed, "s", "", "value of the first node (overrides the scenario seed)")
	fs.StringVar(&f.Color, "color", "", "style output: auto, always or never")
	fs.BoolVar(&f.Interactive, "i", false, "read commands interactively after running the others")
	fs.BoolVar(&f.Verbose, "V", false, "log each command")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: slist [flags] [command[; command...]]\n\n")
		fmt.Fprintf(fs.Output(), "commands: %s\n\n", strings.Join(command.Ops(), ", "))
		fs.PrintDefaults()
	}
}

// ParseArgs defines and parses the flags from the command line. args[0] is the
// program name.
func ParseArgs(args []string) (*Flags, error) {
	f := new(Flags)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	defineFlags(fs, f)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if f.Color != "" {
		if err := display.ValidColorMode(f.Color); err != nil {
			return nil, err
		}
	}
	for _, s := range strings.Split(strings.Join(fs.Args(), " "), ";") {
		if s = strings.TrimSpace(s); s != "" {
			f.Steps = append(f.Steps, s)
		}
	}
	return f, nil
}

// LoadScenarioFromFlags loads the scenario named by the flags, or an empty one,
// and merges the flags over it. Flag steps run after the scenario steps.
func LoadScenarioFromFlags(f *Flags) (*config.Scenario, error) {
	s := &config.Scenario{
		Color:    config.DefaultColor,
		LogLevel: config.DefaultLogLevel,
	}
	if f.ScenarioPath != "" {
		var err error
		if s, err = config.LoadScenario(f.ScenarioPath); err != nil {
			return nil, err
		}
	}
	if f.Seed != "" {
		s.Seed = f.Seed
	}
	if f.Color != "" {
		s.Color = f.Color
	}
	if f.Verbose {
		s.LogLevel = "debug"
	}
	s.Steps = append(s.Steps, f.Steps...)
	if s.Seed == "" {
		return nil, ErrMissingSeed
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
