package menu

import (
	"fmt"
	"slices"

	"github.com/moasq/consolemenu/internal/font"
	"github.com/moasq/consolemenu/internal/terminal"
)

// Renderer turns text into glyph art rows. *font.Font implements it.
type Renderer interface {
	Render(text string) ([]string, error)
}

// Title is the optional heading drawn above the options. Its rows are
// computed once, when the title is built.
type Title struct {
	text  string
	theme terminal.Theme
	font  Renderer
	lines []string
}

// NewTitle returns a title drawn as plain text.
func NewTitle(text string, theme terminal.Theme) *Title {
	return &Title{text: text, theme: theme, lines: []string{text}}
}

// NewFontTitle renders text with r and returns a title drawn as glyph art.
func NewFontTitle(text string, theme terminal.Theme, r Renderer) (*Title, error) {
	if r == nil {
		return NewTitle(text, theme), nil
	}
	lines, err := r.Render(text)
	if err != nil {
		return nil, fmt.Errorf("failed to render title %q: %w", text, err)
	}
	return &Title{text: text, theme: theme, font: r, lines: lines}, nil
}

// TitleFromFile loads the FIGlet font at fontPath and renders text with it.
// A missing file fails with font.ErrFontNotFound and a malformed one with a
// *font.ParseError.
func TitleFromFile(text string, theme terminal.Theme, fontPath string) (*Title, error) {
	f, err := font.Load(fontPath)
	if err != nil {
		return nil, err
	}
	return NewFontTitle(text, theme, f)
}

// Text returns the title text as given.
func (t *Title) Text() string {
	return t.text
}

// Theme returns the title colors.
func (t *Title) Theme() terminal.Theme {
	return t.theme
}

// Stylized reports whether the title is drawn as glyph art.
func (t *Title) Stylized() bool {
	return t.font != nil
}

// Lines returns the rows drawn for the title.
func (t *Title) Lines() []string {
	return slices.Clone(t.lines)
}
