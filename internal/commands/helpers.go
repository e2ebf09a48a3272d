package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/moasq/consolemenu/internal/logging"
	"github.com/moasq/consolemenu/internal/menu"
	"github.com/moasq/consolemenu/internal/terminal"
)

// newConsole is replaced in tests.
var newConsole = screenConsole

// screenConsole draws on stderr. Stdout carries only the chosen name, so
// `$(consolemenu choose ...)` captures the choice and not the frames.
func screenConsole() menu.Console {
	return terminal.NewConsole(os.Stdin, os.Stderr)
}

// baseConfig is the menu configuration given by flags and settings.
func baseConfig() menu.Config {
	return menu.Config{
		Theme:   terminal.Theme{Foreground: foreground, Background: background},
		Symbol:  symbol,
		Console: newConsole(),
		Logger:  logging.ForPackage(logger, "menu"),
	}
}

// runMenu runs the menu and prints the chosen option's name to out. The
// option's action error is returned as is.
func runMenu(out io.Writer, cfg menu.Config, options []*menu.Option) error {
	chosen, err := menu.New(cfg).Run(options)
	if chosen == nil {
		return err
	}
	logger.Info("option chosen", slog.String("name", chosen.Name))
	if !quiet {
		fmt.Fprintln(out, chosen.Name)
	}
	return err
}

// runShell runs command through the platform shell with the process's
// standard streams.
func runShell(command string) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("running command", slog.String("command", command))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", command, err)
	}
	return nil
}
