// Package command parses and runs textual list operations against a
// List[string].
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Op names a list operation.
type Op string

// Operations understood by Parse.
const (
	OpAppend   Op = "append"
	OpPrepend  Op = "prepend"
	OpInsert   Op = "insert"
	OpSet      Op = "set"
	OpGet      Op = "get"
	OpRemove   Op = "remove"
	OpPop      Op = "pop"
	OpPopFirst Op = "pop_first"
	OpReverse  Op = "reverse"
	OpPrint    Op = "print"
	OpLen      Op = "len"
)

// Parse errors.
var (
	ErrEmptyCommand    = errors.New("empty command")
	ErrUnknownOp       = errors.New("unknown operation")
	ErrMissingArgument = errors.New("missing argument")
	ErrBadIndex        = errors.New("index is not an integer")
)

// argSpec describes the arguments an operation takes.
type argSpec struct {
	index bool
	value bool
}

var specs = map[Op]argSpec{
	OpAppend:   {value: true},
	OpPrepend:  {value: true},
	OpInsert:   {index: true, value: true},
	OpSet:      {index: true, value: true},
	OpGet:      {index: true},
	OpRemove:   {index: true},
	OpPop:      {},
	OpPopFirst: {},
	OpReverse:  {},
	OpPrint:    {},
	OpLen:      {},
}

// Command is a parsed operation. Index and Value are only meaningful for
// operations that take them.
type Command struct {
	Op    Op
	Index int
	Value string
}

func (c *Command) String() string {
	s := specs[c.Op]
	switch {
	case s.index && s.value:
		return fmt.Sprintf("%s %d %s", c.Op, c.Index, c.Value)
	case s.index:
		return fmt.Sprintf("%s %d", c.Op, c.Index)
	case s.value:
		return fmt.Sprintf("%s %s", c.Op, c.Value)
	}
	return string(c.Op)
}

// Ops returns the names of all operations, sorted.
func Ops() []string {
	ops := maps.Keys(specs)
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, string(op))
	}
	slices.Sort(out)
	return out
}

// cutSpace splits s around its first run of whitespace.
func cutSpace(s string) (before, after string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

// Parse reads a command of the form "op [index] [value]". Fields are separated
// by any whitespace. The value is the rest of the line after the index, so it
// may contain spaces.
func Parse(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyCommand
	}
	name, rest := cutSpace(line)
	c := &Command{Op: Op(strings.ToLower(name))}
	s, ok := specs[c.Op]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOp, name)
	}
	rest = strings.TrimSpace(rest)
	if s.index {
		if rest == "" {
			return nil, fmt.Errorf("%s: %w: index", c.Op, ErrMissingArgument)
		}
		var idx string
		idx, rest = cutSpace(rest)
		n, err := strconv.Atoi(idx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %q", c.Op, ErrBadIndex, idx)
		}
		c.Index = n
		rest = strings.TrimSpace(rest)
	}
	if s.value {
		if rest == "" {
			return nil, fmt.Errorf("%s: %w: value", c.Op, ErrMissingArgument)
		}
		c.Value = rest
	}
	return c, nil
}
