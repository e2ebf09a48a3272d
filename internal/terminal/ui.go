package terminal

import (
	"fmt"

	"github.com/fatih/color"
)

// Status markers. They go to stderr so stdout stays clean for the choice.
var (
	successMark = color.New(color.Bold, color.FgGreen)
	errorMark   = color.New(color.Bold, color.FgRed)
	infoMark    = color.New(color.Bold, color.FgBlue)
	warningMark = color.New(color.Bold, color.FgYellow)
)

// Success prints a green success message.
func Success(msg string) {
	fmt.Fprintf(color.Error, "%s %s\n", successMark.Sprint("✓"), msg)
}

// Error prints a red error message.
func Error(msg string) {
	fmt.Fprintf(color.Error, "%s %s\n", errorMark.Sprint("✗"), msg)
}

// Info prints a blue info message.
func Info(msg string) {
	fmt.Fprintf(color.Error, "%s %s\n", infoMark.Sprint("i"), msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	fmt.Fprintf(color.Error, "%s %s\n", warningMark.Sprint("!"), msg)
}
