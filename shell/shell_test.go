package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"go.uber.org/goleak"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"hop.computer/linkedlist/command"
	"hop.computer/linkedlist/display"
	"hop.computer/linkedlist/pkg/slist"
)

func newRunner(l *slist.List[string], out io.Writer) *command.Runner {
	return command.NewRunner(l, out, display.NewPrinter(out, false))
}

func TestRunLines(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := slist.New("1")
	var out bytes.Buffer
	in := strings.NewReader("append 2\n\nshuffle\nprint\nquit\nappend 3\n")
	assert.NilError(t, RunLines(newRunner(l, &out), in, &out))
	assert.Equal(t, "true\nerror: unknown operation \"shuffle\"\n1\n2\n", out.String())
	assert.Equal(t, 2, l.Len())
}

func TestRunLinesEOF(t *testing.T) {
	l := slist.New("1")
	var out bytes.Buffer
	assert.NilError(t, RunLines(newRunner(l, &out), strings.NewReader("pop\npop"), &out))
	assert.Equal(t, "1\nnone\n", out.String())
	assert.Equal(t, 0, l.Len())
}

func TestRunTerminal(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := slist.New("1")
	var out bytes.Buffer
	rw := struct {
		io.Reader
		io.Writer
	}{strings.NewReader("append 2\rreverse\rget 5\rexit\rappend 3\r"), &out}
	term := NewTerminal(rw)
	assert.NilError(t, Run(newRunner(l, term), term))

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "2", l.Head().Value)
	assert.Check(t, is.Contains(out.String(), Prompt))
	assert.Check(t, is.Contains(out.String(), "none"))
}

func TestRunTerminalEOF(t *testing.T) {
	l := slist.New("1")
	var out bytes.Buffer
	rw := struct {
		io.Reader
		io.Writer
	}{strings.NewReader("prepend 0\r"), &out}
	term := NewTerminal(rw)
	assert.NilError(t, Run(newRunner(l, term), term))
	assert.Equal(t, "0", l.Head().Value)
}
