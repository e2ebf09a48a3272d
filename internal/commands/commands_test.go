package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moasq/consolemenu/internal/menu"
	"github.com/moasq/consolemenu/internal/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with keys typed on a fake terminal and returns what
// was printed to stdout.
func execute(t *testing.T, keys string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	settings := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("debug: false\n"), 0o644))

	prev := newConsole
	newConsole = func() menu.Console {
		return terminal.NewConsole(strings.NewReader(keys), io.Discard)
	}
	t.Cleanup(func() { newConsole = prev })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", settings}, args...))
	err := Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestChoosePrintsSelection(t *testing.T) {
	out, err := execute(t, "\x1b[B\x1b[B\n", "choose", "main", "develop", "release")

	require.NoError(t, err)
	assert.Equal(t, "release\n", out)
}

func TestChooseKeepsFramesOffStdout(t *testing.T) {
	resetFlags(rootCmd)
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("debug: false\n"), 0o644))

	var out, screen bytes.Buffer
	prev := newConsole
	newConsole = func() menu.Console {
		return terminal.NewConsole(strings.NewReader("\x1b[B\n"), &screen, terminal.WithColor(true), terminal.WithCursorControl(true))
	}
	t.Cleanup(func() { newConsole = prev })

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", settings, "choose", "main", "develop", "release"})
	require.NoError(t, Execute())

	assert.Equal(t, "develop\n", out.String())
	assert.Contains(t, screen.String(), "> develop")
	assert.Contains(t, screen.String(), "\x1b[2J")
}

func TestScreenConsoleDrawsOnStderr(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = stderr })

	screenConsole().WriteLine(terminal.Theme{}, "frame")
	require.NoError(t, w.Close())

	drawn, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "frame\n", string(drawn))
}

func TestChooseQuiet(t *testing.T) {
	out, err := execute(t, "\n", "choose", "-q", "only")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestChooseInterrupted(t *testing.T) {
	out, err := execute(t, "\x1b[B\x03", "choose", "a", "b")

	assert.ErrorIs(t, err, terminal.ErrInterrupted)
	assert.Empty(t, out)
}

func TestChooseWithMissingFont(t *testing.T) {
	_, err := execute(t, "\n", "choose", "--title", "T", "--font", filepath.Join(t.TempDir(), "none.flf"), "a")

	assert.ErrorContains(t, err, "font not found")
}

func TestChooseRequiresItems(t *testing.T) {
	_, err := execute(t, "\n", "choose")

	assert.Error(t, err)
}

func TestRunMenuFile(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")
	menuFile := filepath.Join(dir, "menu.yaml")
	content := "title:\n  text: Tools\noptions:\n  - name: Touch\n    run: \"touch '" + marker + "'\"\n  - name: Nothing\n"
	require.NoError(t, os.WriteFile(menuFile, []byte(content), 0o644))

	out, err := execute(t, "\x1b[A\n", "run", menuFile)

	require.NoError(t, err)
	assert.Equal(t, "Touch\n", out)
	assert.FileExists(t, marker)
}

func TestRunMenuFileCommandFailure(t *testing.T) {
	menuFile := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(menuFile, []byte("options:\n  - name: Fail\n    run: exit 3\n"), 0o644))

	out, err := execute(t, "\n", "run", menuFile)

	assert.ErrorContains(t, err, `command "exit 3" failed`)
	assert.Equal(t, "Fail\n", out, "the choice is printed even when its command fails")
}

func TestRunMissingMenuFile(t *testing.T) {
	_, err := execute(t, "\n", "run", filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemoRuns(t *testing.T) {
	_, err := execute(t, "\x1b[B\n", "demo")

	assert.NoError(t, err)
}

func TestSettingsFileSetsSymbol(t *testing.T) {
	resetFlags(rootCmd)
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("symbol: '*'\nforeground: red\n"), 0o644))

	var out bytes.Buffer
	var screen bytes.Buffer
	prev := newConsole
	newConsole = func() menu.Console {
		return terminal.NewConsole(strings.NewReader("\n"), &screen)
	}
	t.Cleanup(func() { newConsole = prev })

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", settings, "choose", "x"})
	require.NoError(t, Execute())

	assert.Equal(t, "*", symbol)
	assert.Equal(t, terminal.Red, foreground)
	assert.Contains(t, screen.String(), "* x")
}

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "menu.log")

	_, err := execute(t, "\n", "--log-file", logPath, "--debug", "run", filepath.Join(dir, "nope.yaml"))

	require.Error(t, err)
	logged, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(logged), "starting")
	assert.False(t, fileOpen(t, logPath), "log file still open after a failed command")
}

// fileOpen reports whether this process holds a descriptor for path.
func fileOpen(t *testing.T, path string) bool {
	t.Helper()
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	fds, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no /proc/self/fd on this platform")
	}
	for _, fd := range fds {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", fd.Name()))
		if err == nil && target == path {
			return true
		}
	}
	return false
}
