package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	esc   = "\x1b["
	reset = esc + "0m"
)

func newTestConsole(opts ...ConsoleOption) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	opts = append([]ConsoleOption{WithColor(true)}, opts...)
	return NewConsole(strings.NewReader(""), &out, opts...), &out
}

func TestWritePlainWithoutColor(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	c.Write(Theme{Foreground: Red, Background: Blue}, "hello")
	c.WriteLine(Fg(Green), " world")

	assert.Equal(t, "hello world\n", out.String())
}

func TestWriteAppliesAndResets(t *testing.T) {
	c, out := newTestConsole()

	c.Write(Theme{Foreground: DarkRed, Background: Blue}, "hi")

	assert.Equal(t, esc+"31;104m"+"hi"+reset, out.String())
	assert.Equal(t, Theme{}, c.Ambient())
}

func TestWriteDefaultThemeIsTransparent(t *testing.T) {
	c, out := newTestConsole()

	c.Write(Theme{}, "plain")
	assert.Equal(t, "plain", out.String())

	c.SetAmbient(Fg(Yellow))
	out.Reset()
	c.Write(Theme{}, "ambient")
	assert.Equal(t, "ambient", out.String(), "an unset theme must not touch the ambient colors")
}

func TestWriteInheritsAndRestoresAmbient(t *testing.T) {
	c, out := newTestConsole()
	c.SetAmbient(Theme{Foreground: Gray, Background: DarkBlue})
	assert.Equal(t, reset+esc+"37;44m", out.String())
	out.Reset()

	c.Write(Fg(Red), "x")

	// foreground from the theme, background inherited, then back to ambient
	assert.Equal(t, esc+"91;44m"+"x"+reset+esc+"37;44m", out.String())
	assert.Equal(t, Theme{Foreground: Gray, Background: DarkBlue}, c.Ambient())
}

func TestWriteLineRestoresBeforeNewline(t *testing.T) {
	c, out := newTestConsole()

	c.WriteLine(Theme{Background: DarkRed}, "row")

	assert.Equal(t, esc+"41m"+"row"+reset+"\n", out.String())
}

func TestManyWritesLeaveAmbientUnchanged(t *testing.T) {
	c, out := newTestConsole()
	ambient := Theme{Foreground: Cyan}
	c.SetAmbient(ambient)

	themes := []Theme{{}, Fg(Red), {Background: White}, {Foreground: Black, Background: Yellow}}
	for i := 0; i < 5; i++ {
		for _, th := range themes {
			out.Reset()
			c.WriteLine(th, "line")
			assert.Equal(t, ambient, c.Ambient())
			if !th.IsDefault() {
				assert.True(t, strings.HasSuffix(out.String(), reset+esc+"96m\n"), "got %q", out.String())
			}
		}
	}
}

func TestCursorVisibilityWithoutTerminalIsNoop(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	c.SetCursorVisible(false)

	assert.True(t, c.CursorVisible())
	assert.Empty(t, out.String())
}

func TestCursorVisibilityWithCursorControl(t *testing.T) {
	c, out := newTestConsole(WithCursorControl(true))

	c.SetCursorVisible(false)
	assert.False(t, c.CursorVisible())
	assert.Contains(t, out.String(), esc+"?25l")

	c.SetCursorVisible(true)
	assert.True(t, c.CursorVisible())
	assert.Contains(t, out.String(), esc+"?25h")
}

func TestClearEmitsEraseDisplay(t *testing.T) {
	c, out := newTestConsole()

	c.Clear()

	assert.Contains(t, out.String(), esc+"2J")
}

func TestEnterRawWithoutTerminalIsNoop(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("\n"), &out)

	restore, err := c.EnterRaw()
	require.NoError(t, err)
	c.WriteLine(Theme{}, "row")
	restore()
	restore()

	assert.Equal(t, "row\n", out.String())
	key, err := c.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyEnter, key)
}

func TestWriteLineInRawModeReturnsCarriage(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)
	c.raw = true

	c.WriteLine(Theme{}, "a")
	c.WriteLine(Theme{}, "b")

	assert.Equal(t, "a\r\nb\r\n", out.String())
}
