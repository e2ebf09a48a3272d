package commands

import (
	"errors"
	"io"
	"log/slog"

	"github.com/moasq/consolemenu/internal/config"
	"github.com/moasq/consolemenu/internal/logging"
	"github.com/moasq/consolemenu/internal/terminal"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// Flags shared by every command. Values not given on the command line come
// from the settings file or CONSOLEMENU_* variables.
var (
	cfgFile    string
	logFile    string
	debug      bool
	quiet      bool
	symbol     string
	foreground terminal.Color
	background terminal.Color
	fontName   string
)

var (
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:     "consolemenu",
	Short:   "Interactive console selection menus",
	Long:    "consolemenu draws a list of options in the terminal, lets you move the highlight with the arrow keys and runs the option confirmed with Enter.",
	Version: Version,

	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(cfgFile)
		if err != nil {
			return err
		}
		if err := settings.BindFlags(cmd.Flags()); err != nil {
			return err
		}

		l, c, err := logging.New(logFile, debug)
		if err != nil {
			return err
		}
		logger, closeLog = l, c
		logger.Debug("starting", slog.String("command", cmd.Name()), slog.String("settings", settings.File()))
		return nil
	},
}

// Execute runs the root command. The log file is closed on every path,
// since cobra skips post-run hooks when a command fails.
func Execute() error {
	err := rootCmd.Execute()
	return errors.Join(err, closeLogger())
}

func closeLogger() error {
	c := closeLog
	closeLog = func() error { return nil }
	return c()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.consolemenu.yaml)")
	flags.StringVar(&logFile, "log-file", "", "append debug logs to this file")
	flags.BoolVar(&debug, "debug", false, "log at debug level")
	flags.BoolVarP(&quiet, "quiet", "q", false, "do not print the chosen option")
	flags.StringVar(&symbol, "symbol", "", "marker drawn before the selected option (default \">\")")
	flags.Var(&foreground, "foreground", "foreground color of the marker")
	flags.Var(&background, "background", "background color of the marker")
	flags.StringVar(&fontName, "font", "", "FIGlet font file for titles, or \"standard\" for the bundled font")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(chooseCmd)
	rootCmd.AddCommand(demoCmd)
}
