package terminal

import (
	"bufio"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console reads keys from in and writes themed text to out. It tracks the
// ambient colors and the cursor visibility itself, since neither can be
// queried from an ANSI terminal.
type Console struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	screen *termenv.Output

	color         bool
	tty           bool
	raw           bool
	ambient       Theme
	cursorVisible bool
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithColor forces color output on or off.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.color = enabled
	}
}

// WithCursorControl forces the cursor-visibility capability on or off.
func WithCursorControl(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.tty = enabled
	}
}

// NewConsole creates a console. Color and cursor control are enabled when
// out is a terminal and NO_COLOR is unset; options override the detection.
func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		in:            in,
		reader:        bufio.NewReader(in),
		out:           out,
		cursorVisible: true,
	}
	if f, ok := out.(interface{ Fd() uintptr }); ok {
		c.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	c.color = c.tty && os.Getenv("NO_COLOR") == ""

	for _, opt := range opts {
		opt(c)
	}
	c.screen = termenv.NewOutput(out)
	return c
}

// Stdio returns a console on the process's standard input and output.
func Stdio() *Console {
	return NewConsole(os.Stdin, os.Stdout)
}

// Write writes text in theme. Default channels inherit the ambient colors,
// and the ambient colors are active again once Write returns.
func (c *Console) Write(theme Theme, text string) {
	restore := c.apply(theme)
	defer restore()
	_, _ = io.WriteString(c.out, text)
}

// WriteLine is Write followed by a newline. The newline is written after the
// colors are restored so a background never bleeds into the next row.
func (c *Console) WriteLine(theme Theme, text string) {
	c.Write(theme, text)
	_, _ = io.WriteString(c.out, c.lineEnd())
}

// SetAmbient makes theme the colors that unset channels inherit and that
// every write restores.
func (c *Console) SetAmbient(theme Theme) {
	c.ambient = theme
	if !c.color {
		return
	}
	c.sgr(color.Reset)
	c.sgr(theme.attributes()...)
}

// Ambient returns the current ambient colors.
func (c *Console) Ambient() Theme {
	return c.ambient
}

// apply switches to theme resolved against the ambient colors and returns
// the function that switches back.
func (c *Console) apply(theme Theme) func() {
	prior := c.ambient
	effective := theme.Over(prior)
	if !c.color || effective == prior {
		return func() {}
	}

	c.sgr(effective.attributes()...)
	return func() {
		c.sgr(color.Reset)
		c.sgr(prior.attributes()...)
	}
}

func (c *Console) sgr(attrs ...color.Attribute) {
	if len(attrs) == 0 {
		return
	}
	seq := color.New(attrs...)
	seq.EnableColor()
	seq.SetWriter(c.out)
}

// Clear clears the screen and moves the cursor to the top-left corner.
func (c *Console) Clear() {
	c.screen.ClearScreen()
}

// CursorVisible reports the tracked cursor visibility.
func (c *Console) CursorVisible() bool {
	return c.cursorVisible
}

// SetCursorVisible shows or hides the cursor. Without a terminal on the
// output side this is a no-op.
func (c *Console) SetCursorVisible(visible bool) {
	if !c.tty {
		return
	}
	if visible {
		c.screen.ShowCursor()
	} else {
		c.screen.HideCursor()
	}
	c.cursorVisible = visible
}
