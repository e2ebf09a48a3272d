package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/moasq/consolemenu/internal/font"
	"github.com/moasq/consolemenu/internal/menu"
	"github.com/moasq/consolemenu/internal/terminal"
	"gopkg.in/yaml.v3"
)

// StandardFont selects the FIGlet font bundled with the renderer instead of
// a font file.
const StandardFont = "standard"

// File is a menu definition read from YAML.
type File struct {
	Symbol  string         `yaml:"symbol"`
	Theme   terminal.Theme `yaml:"theme"`
	Title   *TitleSpec     `yaml:"title"`
	Options []OptionSpec   `yaml:"options"`

	// dir resolves relative font paths.
	dir string
}

// TitleSpec describes the menu heading.
type TitleSpec struct {
	Text           string `yaml:"text"`
	terminal.Theme `yaml:",inline"`
	// Font is a FIGlet font path, relative to the menu file, or StandardFont.
	// Empty draws the title as plain text.
	Font string `yaml:"font"`
}

// OptionSpec describes one option.
type OptionSpec struct {
	Name           string `yaml:"name"`
	terminal.Theme `yaml:",inline"`
	// Run is a shell command executed when the option is chosen.
	Run string `yaml:"run"`
}

// Runner executes an option's shell command.
type Runner func(command string) error

// LoadFile reads and validates the menu file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid menu file %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes a menu definition. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("menu file is empty")
		}
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if len(f.Options) == 0 {
		return errors.New("at least one option is required")
	}
	for i, o := range f.Options {
		if strings.TrimSpace(o.Name) == "" {
			return fmt.Errorf("option %d has no name", i+1)
		}
	}
	if f.Title != nil && f.Title.Text == "" {
		return errors.New("title has no text")
	}
	return nil
}

// MenuConfig layers the file over base: a symbol, theme channel or title
// set in the file wins over the one in base.
func (f *File) MenuConfig(base menu.Config) (menu.Config, error) {
	cfg := base
	if f.Symbol != "" {
		cfg.Symbol = f.Symbol
	}
	cfg.Theme = f.Theme.Over(base.Theme)

	if f.Title != nil {
		title, err := BuildTitle(f.Title.Text, f.Title.Theme, f.resolveFont(f.Title.Font))
		if err != nil {
			return menu.Config{}, err
		}
		cfg.Title = title
	}
	return cfg, nil
}

func (f *File) resolveFont(name string) string {
	if name == "" || name == StandardFont || filepath.IsAbs(name) || f.dir == "" {
		return name
	}
	return filepath.Join(f.dir, name)
}

// MenuOptions builds the menu options. Options with a command run it through
// run when chosen.
func (f *File) MenuOptions(run Runner) []*menu.Option {
	opts := make([]*menu.Option, len(f.Options))
	for i, spec := range f.Options {
		var action func() error
		if spec.Run != "" && run != nil {
			command := spec.Run
			action = func() error {
				return run(command)
			}
		}
		opts[i] = menu.NewOption(spec.Name, spec.Theme, action)
	}
	return opts
}

// BuildTitle returns a plain title when fontName is empty, a title in the
// bundled font for StandardFont, and otherwise loads fontName as a FIGlet
// font file.
func BuildTitle(text string, theme terminal.Theme, fontName string) (*menu.Title, error) {
	switch fontName {
	case "":
		return menu.NewTitle(text, theme), nil
	case StandardFont:
		return menu.NewFontTitle(text, theme, font.Standard())
	default:
		return menu.TitleFromFile(text, theme, fontName)
	}
}
