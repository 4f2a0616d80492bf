package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"hop.computer/linkedlist/command"
	"hop.computer/linkedlist/config"
	"hop.computer/linkedlist/display"
	"hop.computer/linkedlist/flags"
	"hop.computer/linkedlist/pkg/slist"
	"hop.computer/linkedlist/shell"
)

// run builds the list from the scenario seed and runs every step against it,
// writing results to out.
func run(s *config.Scenario, out io.Writer) (*slist.List[string], error) {
	cmds, err := s.Commands()
	if err != nil {
		return nil, err
	}
	l := slist.New(s.Seed)
	r := command.NewRunner(l, out, display.NewPrinter(out, display.ShouldStyle(out, s.Color)))
	for _, c := range cmds {
		if err := r.Run(c); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func main() {
	f, err := flags.ParseArgs(os.Args)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}

	s, err := flags.LoadScenarioFromFlags(f)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	logrus.SetLevel(s.Level())

	l, err := run(s, os.Stdout)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	logrus.WithField("len", l.Len()).Debug("scenario done")

	if !f.Interactive {
		return
	}
	err = shell.RunStdio(func(out io.Writer) *command.Runner {
		return command.NewRunner(l, out, display.NewPrinter(out, display.ShouldStyle(os.Stdout, s.Color)))
	})
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
