package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
)

// Pipeline Colors
var (
	StageColor   = color.New(color.FgBlue, color.Bold).SprintFunc() // Stage numbers in tables
	CommandColor = color.New(color.FgWhite).SprintFunc()            // Program names and command lines
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
