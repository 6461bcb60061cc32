package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	titleColor = "#7D56F4"
	okColor    = "#04B575"
)

// Painter renders text in the report's styles
type Painter interface {
	Title(string) string // Step headers
	OK(string) string    // Confirmation lines
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
}

// NewPalette creates a Palette whose color profile is detected from w.
func NewPalette(w io.Writer) *Palette {
	r := lipgloss.NewRenderer(w)
	return &Palette{
		title: NewBold(r, titleColor),
		ok:    NewStyle(r, okColor).Italic(true),
	}
}

func (p *Palette) Title(s string) string { return p.title.Render(s) }
func (p *Palette) OK(s string) string    { return p.ok.Render(s) }

func NewStyle(r *lipgloss.Renderer, fg string) lipgloss.Style {
	return r.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(r *lipgloss.Renderer, fg string) lipgloss.Style {
	return NewStyle(r, fg).Bold(true)
}
