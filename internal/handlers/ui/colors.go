package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For commands the user can copy
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For labels and sources
)

// Alias Specific Colors
var (
	AliasArrowColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	AliasNameColor   = color.New(color.FgYellow).SprintFunc()
	AliasTargetColor = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Disable turns colouring off for every writer, e.g. when output is not a terminal.
func Disable() {
	color.NoColor = true
}
