// Package shell reads list commands from a terminal and runs them.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"hop.computer/linkedlist/command"
)

// Prompt is shown before each command in interactive mode.
const Prompt = "slist> "

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case "quit", "exit":
		return true
	}
	return false
}

func runLine(r *command.Runner, out io.Writer, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if err := r.RunLine(line); err != nil {
		logrus.WithField("line", line).Debug(err)
		fmt.Fprintf(out, "error: %s\n", err)
	}
}

// Run reads commands from t until quit, exit, or EOF. The runner must write to
// t, as returned by NewTerminal, so that output is translated for a raw-mode
// terminal.
func Run(r *command.Runner, t *term.Terminal) error {
	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if isQuit(line) {
			return nil
		}
		runLine(r, t, line)
	}
}

// NewTerminal wraps rw in a terminal showing Prompt.
func NewTerminal(rw io.ReadWriter) *term.Terminal {
	return term.NewTerminal(rw, Prompt)
}

// RunLines runs one command per line of in, writing errors to out. It is used
// when input is not a terminal.
func RunLines(r *command.Runner, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if isQuit(sc.Text()) {
			return nil
		}
		runLine(r, out, sc.Text())
	}
	return sc.Err()
}

// MakeRunner builds the runner used for a session writing to out.
type MakeRunner func(out io.Writer) *command.Runner

// RunStdio runs an interactive session on stdin and stdout. A terminal stdin
// is put into raw mode for the duration of the session.
func RunStdio(mk MakeRunner) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return RunLines(mk(os.Stdout), os.Stdin, os.Stdout)
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("error with terminal state: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	t := NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout})
	return Run(mk(t), t)
}
