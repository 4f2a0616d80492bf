package command

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"hop.computer/linkedlist/display"
	"hop.computer/linkedlist/pkg/slist"
)

// Runner applies commands to a list and writes one result per command.
type Runner struct {
	l   *slist.List[string]
	out io.Writer
	p   *display.Printer
	log *logrus.Entry
}

// NewRunner returns a Runner operating on l. Results are written to out through
// p, which must also write to out.
func NewRunner(l *slist.List[string], out io.Writer, p *display.Printer) *Runner {
	return &Runner{
		l:   l,
		out: out,
		p:   p,
		log: logrus.WithField("component", "runner"),
	}
}

// List returns the list the runner operates on.
func (r *Runner) List() *slist.List[string] {
	return r.l
}

// RunLine parses line and runs it.
func (r *Runner) RunLine(line string) error {
	c, err := Parse(line)
	if err != nil {
		return err
	}
	return r.Run(c)
}

// Run applies c to the list. Operations that return a bool write true or
// false. Operations that return a node write its value, or none when there is
// no node. reverse and print write the whole list.
func (r *Runner) Run(c *Command) error {
	var err error
	switch c.Op {
	case OpAppend:
		err = r.writeBool(r.l.Append(c.Value))
	case OpPrepend:
		err = r.writeBool(r.l.Prepend(c.Value))
	case OpInsert:
		err = r.writeBool(r.l.Insert(c.Index, c.Value))
	case OpSet:
		err = r.writeBool(r.l.SetValue(c.Index, c.Value))
	case OpGet:
		err = r.writeNode(r.l.Get(c.Index))
	case OpRemove:
		err = r.writeNode(r.l.Remove(c.Index))
	case OpPop:
		err = r.writeNode(r.l.Pop())
	case OpPopFirst:
		err = r.writeNode(r.l.PopFirst())
	case OpReverse:
		err = r.p.Values(r.l.Reverse().Traverse())
	case OpPrint:
		err = r.p.Values(r.l.Traverse())
	case OpLen:
		_, err = fmt.Fprintln(r.out, strconv.Itoa(r.l.Len()))
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, c.Op)
	}
	r.log.WithFields(logrus.Fields{
		"op":    c.Op,
		"index": c.Index,
		"len":   r.l.Len(),
	}).Debug("ran command")
	return err
}

func (r *Runner) writeBool(ok bool) error {
	_, err := fmt.Fprintln(r.out, strconv.FormatBool(ok))
	return err
}

func (r *Runner) writeNode(n *slist.Node[string]) error {
	if n == nil {
		return r.p.Value("", false)
	}
	return r.p.Value(n.Value, true)
}
