package commands

import (
	"github.com/moasq/consolemenu/internal/config"
	"github.com/moasq/consolemenu/internal/menu"
	"github.com/moasq/consolemenu/internal/terminal"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show a sample menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := menu.Build(func(c *menu.Config) error {
			base := baseConfig()
			c.Console, c.Logger = base.Console, base.Logger
			if symbol != "" {
				c.Symbol = symbol
			}
			c.Theme = base.Theme.Over(terminal.Fg(terminal.Cyan))

			font := fontName
			if font == "" {
				font = config.StandardFont
			}
			title, err := config.BuildTitle("Console Menu", terminal.Fg(terminal.Yellow), font)
			if err != nil {
				return err
			}
			c.Title = title
			return nil
		})
		if err != nil {
			return err
		}

		chosen, err := m.Run(demoOptions())
		if err != nil {
			return err
		}
		logger.Info("demo option chosen", "name", chosen.Name)
		return nil
	},
}

func demoOptions() []*menu.Option {
	return []*menu.Option{
		menu.NewOption("Start", terminal.Fg(terminal.Green), func() error {
			terminal.Success("Started.")
			return nil
		}),
		menu.NewOption("Settings", terminal.Theme{}, func() error {
			terminal.Info("Nothing to configure in the demo.")
			return nil
		}),
		menu.NewOption("Exit", terminal.Fg(terminal.Red), func() error {
			terminal.Warning("Bye.")
			return nil
		}),
	}
}
