// Package ui holds the color themes and lipgloss styles shared by the CLI,
// the REPL and the TUI dashboard.
package ui
