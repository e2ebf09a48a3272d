package commands

import (
	"path/filepath"

	"github.com/moasq/consolemenu/internal/config"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a menu defined in a YAML file",
	Long: `Run the menu defined in FILE and print the chosen option.

An option with a "run" command executes it through the shell once chosen.
Settings in the file override --symbol, --foreground and --background;
--font applies to a title that names no font.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := config.LoadFile(args[0])
		if err != nil {
			return err
		}
		if file.Title != nil && file.Title.Font == "" {
			// --font is relative to the working directory, not the file.
			file.Title.Font, err = flagFont()
			if err != nil {
				return err
			}
		}

		cfg, err := file.MenuConfig(baseConfig())
		if err != nil {
			return err
		}
		return runMenu(cmd.OutOrStdout(), cfg, file.MenuOptions(runShell))
	},
}

func flagFont() (string, error) {
	if fontName == "" || fontName == config.StandardFont {
		return fontName, nil
	}
	return filepath.Abs(fontName)
}
