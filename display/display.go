// Package display writes list values one per line, optionally styled for a
// terminal.
package display

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by ShouldStyle.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrBadColorMode is returned for a color mode other than auto, always or never.
var ErrBadColorMode = errors.New("color mode must be auto, always or never")

// None is written in place of a missing node.
const None = "none"

// ValidColorMode returns ErrBadColorMode unless mode is a known color mode.
func ValidColorMode(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return ErrBadColorMode
}

// ShouldStyle reports whether output to w should be styled. In auto mode this
// is only the case for a terminal.
func ShouldStyle(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes values to an underlying writer.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter returns a Printer writing to w. Plain printers write each value
// followed by a newline and nothing else.
func NewPrinter(w io.Writer, styled bool) *Printer {
	return &Printer{
		w:      w,
		styled: styled,
	}
}

// Styled reports whether p renders with lipgloss.
func (p *Printer) Styled() bool {
	return p.styled
}

// Values writes every value of seq on its own line, in order.
func (p *Printer) Values(seq iter.Seq[string]) error {
	i := 0
	for v := range seq {
		line := v
		if p.styled {
			style := valueStyle
			if i == 0 {
				style = headStyle
			}
			line = lipgloss.JoinHorizontal(lipgloss.Top, gutterStyle.Render(strconv.Itoa(i)), style.Render(v))
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Value writes a single result line. ok false writes None.
func (p *Printer) Value(v string, ok bool) error {
	line := v
	switch {
	case !ok && p.styled:
		line = noneStyle.Render(None)
	case !ok:
		line = None
	case p.styled:
		line = valueStyle.Render(v)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}
