package config

import (
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/linkedlist/command"
	"hop.computer/linkedlist/display"
)

// Defaults applied to settings missing from a scenario file.
const (
	DefaultColor    = display.ColorAuto
	DefaultLogLevel = "info"
)

// fileSystem is swapped for an in-memory filesystem in tests.
var fileSystem fs.FS = osFS{}

type osFS struct{}

// Open implements fs.FS on top of the real filesystem. Unlike os.DirFS it
// accepts absolute and relative paths.
func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// Scenario is a seed value plus a series of commands to run against the list
// built from it.
type Scenario struct {
	Seed     string   `toml:"seed"`
	Color    string   `toml:"color"`
	LogLevel string   `toml:"log_level"`
	Steps    []string `toml:"steps"`
}

// LoadScenario reads and validates the scenario file at path.
func LoadScenario(path string) (*Scenario, error) {
	fd, err := fileSystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	s, err := ParseScenario(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return s, nil
}

// ParseScenario decodes a TOML scenario from r, fills in defaults, and
// validates it.
func ParseScenario(r io.Reader) (*Scenario, error) {
	s := new(Scenario)
	md, err := toml.NewDecoder(r).Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown setting %q", undecoded[0].String())
	}
	if s.Color == "" {
		s.Color = DefaultColor
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the color mode, the log level, and that every step parses.
func (s *Scenario) Validate() error {
	if err := display.ValidColorMode(s.Color); err != nil {
		return errors.Wrapf(err, "invalid color %q", s.Color)
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	for i, step := range s.Steps {
		if _, err := command.Parse(step); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

// Commands returns the parsed steps.
func (s *Scenario) Commands() ([]*command.Command, error) {
	out := make([]*command.Command, 0, len(s.Steps))
	for i, step := range s.Steps {
		c, err := command.Parse(step)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i+1)
		}
		out = append(out, c)
	}
	return out, nil
}

// Level returns the logrus level named by the scenario.
func (s *Scenario) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
