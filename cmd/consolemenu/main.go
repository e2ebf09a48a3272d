package main

import (
	"errors"
	"os"

	"github.com/moasq/consolemenu/internal/commands"
	"github.com/moasq/consolemenu/internal/terminal"
)

func main() {
	if err := commands.Execute(); err != nil {
		if errors.Is(err, terminal.ErrInterrupted) {
			os.Exit(130)
		}
		terminal.Error(err.Error())
		os.Exit(1)
	}
}
