// Package cli holds colored output helpers for the plain (non-TUI) views.
package cli

import (
	"fmt"
	"strings"

	"github.com/buger/goterm"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	// Colors for different types of output
	aiOutputColor  = color.New(color.FgCyan)                // Cyan for assistant replies
	headingColor   = color.New(color.FgMagenta, color.Bold) // Bold magenta for headings
	separatorColor = color.New(color.FgHiBlack)             // Dark grey for separators
	statColor      = color.New(color.FgYellow)              // Yellow for statistics
	warningColor   = color.New(color.FgRed, color.Bold)     // Red for degraded-mode notices
	mutedColor     = color.New(color.FgHiBlack)             // Grey for timestamps
	promptColor    = color.New(color.FgHiBlue)              // Bright blue for prompts

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	separatorColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", width-len(title)-len(separator1))
	headingColor.Printf("%s%s%s\n", separator1, title, separator2)
}

// Heading printed to cli.
func Heading(text string, args ...any) {
	headingColor.Printf(text+"\n", args...)
}

// AIOutput printed to cli.
func AIOutput(text string, args ...any) {
	text = strings.ReplaceAll(text, "%", "%%")
	aiOutputColor.Printf(text, args...)
}

// Stat printed to cli.
func Stat(label string, value any) {
	statColor.Printf("%-24s %v\n", label, value)
}

// Warning printed to cli.
func Warning(text string, args ...any) {
	warningColor.Printf(text+"\n", args...)
}

// Muted printed to cli.
func Muted(text string, args ...any) {
	mutedColor.Printf(text+"\n", args...)
}

// PromptUser for a single line of input.
func PromptUser() (string, error) {
	rl, err := readline.New(promptColor.Sprint("> "))
	if err != nil {
		return "", err
	}
	defer rl.Close()
	return rl.Readline()
}
