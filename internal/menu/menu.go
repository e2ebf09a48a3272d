// Package menu implements an interactive console selection menu: a list of
// options with a movable highlight, confirmed with Enter.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/moasq/consolemenu/internal/terminal"
)

// DefaultSymbol marks the selected option when no symbol is configured.
const DefaultSymbol = ">"

var (
	// ErrNoOptions is returned by Run for an empty option list.
	ErrNoOptions = errors.New("menu: no options to choose from")
	// ErrNilOption is returned by Run when the option list contains nil.
	ErrNilOption = errors.New("menu: nil option")
)

// Console is what the menu needs from the terminal. *terminal.Console
// implements it.
type Console interface {
	ReadKey() (terminal.Key, error)
	Write(theme terminal.Theme, text string)
	WriteLine(theme terminal.Theme, text string)
	Clear()
	// EnterRaw stops key echo until the returned function is called.
	EnterRaw() (func(), error)
	CursorVisible() bool
	SetCursorVisible(visible bool)
}

// Config holds everything a Menu is built from.
type Config struct {
	// Title is drawn above the options; nil draws none.
	Title *Title
	// Theme colors the selection symbol and its blank placeholder.
	Theme terminal.Theme
	// Symbol marks the selected option. Empty means DefaultSymbol.
	Symbol string
	// Console defaults to the process's stdin and stdout.
	Console Console
	// Logger defaults to a logger that discards everything.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration Build starts from.
func DefaultConfig() Config {
	return Config{Symbol: DefaultSymbol}
}

// Menu draws options and lets the user pick one. It holds no per-run state
// and can be run any number of times.
type Menu struct {
	title   *Title
	theme   terminal.Theme
	symbol  string
	blank   string
	console Console
	log     *slog.Logger
}

// New builds a menu from cfg.
func New(cfg Config) *Menu {
	symbol := cfg.Symbol
	if symbol == "" {
		symbol = DefaultSymbol
	}
	console := cfg.Console
	if console == nil {
		console = terminal.Stdio()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Menu{
		title:   cfg.Title,
		theme:   cfg.Theme,
		symbol:  symbol + " ",
		blank:   strings.Repeat(" ", runewidth.StringWidth(symbol)+1),
		console: console,
		log:     logger.With(slog.String("component", "menu")),
	}
}

// Build starts from DefaultConfig, lets configure adjust it, and builds the
// menu. If configure fails no menu is returned.
func Build(configure func(*Config) error) (*Menu, error) {
	cfg := DefaultConfig()
	if configure != nil {
		if err := configure(&cfg); err != nil {
			return nil, fmt.Errorf("failed to configure menu: %w", err)
		}
	}
	return New(cfg), nil
}

// Title returns the menu title, or nil.
func (m *Menu) Title() *Title {
	return m.title
}

// Theme returns the colors of the selection symbol.
func (m *Menu) Theme() terminal.Theme {
	return m.theme
}

// Symbol returns the selection marker.
func (m *Menu) Symbol() string {
	return strings.TrimSuffix(m.symbol, " ")
}

// Run draws options and waits for keys until Enter is pressed. It then
// clears the screen, runs the chosen option's action and returns the option
// together with the action's error, unchanged. The cursor is hidden while
// the menu is up and put back the way it was afterwards, after the action.
func (m *Menu) Run(options []*Option) (*Option, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	for i, o := range options {
		if o == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilOption, i)
		}
	}

	visible := m.console.CursorVisible()
	m.console.SetCursorVisible(false)
	defer m.console.SetCursorVisible(visible)

	restoreInput, err := m.console.EnterRaw()
	if err != nil {
		return nil, err
	}
	releaseInput := sync.OnceFunc(restoreInput)
	defer releaseInput()

	sel := selection{last: len(options) - 1}
	m.draw(options, sel.index)

	for {
		key, err := m.console.ReadKey()
		if err != nil {
			return nil, err
		}

		moved, done := sel.handle(key)
		if done {
			break
		}
		if !moved {
			m.log.Debug("key ignored", slog.String("key", key.String()), slog.Int("index", sel.index))
			continue
		}
		m.log.Debug("selection moved", slog.String("key", key.String()), slog.Int("index", sel.index))
		m.draw(options, sel.index)
	}

	m.console.Clear()
	releaseInput()
	chosen := options[sel.index]
	m.log.Debug("option confirmed", slog.Int("index", sel.index), slog.String("name", chosen.Name))
	return chosen, chosen.invoke()
}

func (m *Menu) draw(options []*Option, selected int) {
	m.console.Clear()

	if m.title != nil {
		for _, line := range m.title.lines {
			m.console.WriteLine(m.title.theme, line)
		}
	}
	m.console.WriteLine(terminal.Theme{}, "")

	for i, o := range options {
		if i == selected {
			m.console.Write(m.theme, m.symbol)
		} else {
			m.console.Write(m.theme, m.blank)
		}
		m.console.WriteLine(o.Theme, o.Name)
	}
}

// selection is the highlight position. Keys either move it, confirm it, or
// do nothing; it never leaves [0, last].
type selection struct {
	index int
	last  int
}

func (s *selection) handle(key terminal.Key) (moved, done bool) {
	switch key {
	case terminal.KeyDown:
		if s.index < s.last {
			s.index++
			return true, false
		}
	case terminal.KeyUp:
		if s.index > 0 {
			s.index--
			return true, false
		}
	case terminal.KeyEnter:
		return false, true
	}
	return false, false
}
