package commands

import (
	"github.com/moasq/consolemenu/internal/config"
	"github.com/moasq/consolemenu/internal/menu"
	"github.com/moasq/consolemenu/internal/terminal"
	"github.com/spf13/cobra"
)

var (
	chooseTitle      string
	chooseTitleColor terminal.Color
	chooseItemColor  terminal.Color
)

var chooseCmd = &cobra.Command{
	Use:   "choose ITEM...",
	Short: "Pick one of the given items",
	Long:  "Show ITEMs as a menu and print the one confirmed with Enter, for use in shell scripts.",
	Example: `  branch=$(consolemenu choose main develop release)
  consolemenu choose --title Deploy --font standard staging production`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := baseConfig()
		if chooseTitle != "" {
			title, err := config.BuildTitle(chooseTitle, terminal.Fg(chooseTitleColor), fontName)
			if err != nil {
				return err
			}
			cfg.Title = title
		}

		options := make([]*menu.Option, len(args))
		for i, item := range args {
			options[i] = menu.NewOption(item, terminal.Fg(chooseItemColor), nil)
		}
		return runMenu(cmd.OutOrStdout(), cfg, options)
	},
}

func init() {
	chooseCmd.Flags().StringVar(&chooseTitle, "title", "", "heading drawn above the items")
	chooseCmd.Flags().Var(&chooseTitleColor, "title-color", "foreground color of the heading")
	chooseCmd.Flags().Var(&chooseItemColor, "item-color", "foreground color of the items")
}
