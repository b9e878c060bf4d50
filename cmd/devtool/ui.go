package main

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// colorEnabled honours the NO_COLOR convention.
var colorEnabled = os.Getenv("NO_COLOR") == ""

func printStatus(color, symbol, format string, a ...any) {
	line := symbol + " " + fmt.Sprintf(format, a...)
	if colorEnabled {
		line = color + line + colorReset
	}
	fmt.Println(line)
}

func PrintInfo(format string, a ...any)    { printStatus(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...any) { printStatus(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...any) { printStatus(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...any)   { printStatus(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Println()
	printStatus(colorYellow, "===", "%s ===", title)
}

// runCommandVerbose runs a command with its output attached to the terminal.
func runCommandVerbose(name string, args ...string) error {
	// #nosec G204 - fixed toolchain invocations only
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
