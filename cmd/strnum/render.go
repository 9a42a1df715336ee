// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette shared by every command.
const (
	colorHeader = "#5A56E0"
	colorKey    = "#3C87E0"
	colorOK     = "#2EA043"
	colorErr    = "#E05252"
	colorMuted  = "#8B8B8B"
)

// styles binds the palette to one output so color detection follows that
// writer (plain text when it is not a terminal).
type styles struct {
	header lipgloss.Style
	key    lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorHeader)),
		key:    r.NewStyle().Foreground(lipgloss.Color(colorKey)),
		ok:     r.NewStyle().Foreground(lipgloss.Color(colorOK)),
		err:    r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorErr)),
		muted:  r.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	}
}

// printer writes styled lines to one writer.
type printer struct {
	w io.Writer
	s styles
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, s: newStyles(w)}
}

func (p *printer) header(title string) {
	fmt.Fprintln(p.w, p.s.header.Render(title))
}

// field prints "key: value".
func (p *printer) field(key string, value any) {
	fmt.Fprintf(p.w, "%s %v\n", p.s.key.Render(key+":"), value)
}

func (p *printer) line(value any) {
	fmt.Fprintln(p.w, value)
}

// verdict prints true/false in the ok or muted style.
func (p *printer) verdict(b bool) {
	if b {
		fmt.Fprintln(p.w, p.s.ok.Render("true"))
		return
	}
	fmt.Fprintln(p.w, p.s.muted.Render("false"))
}
