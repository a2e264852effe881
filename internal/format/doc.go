// Package format holds presentation helpers shared by the CLI and the TUI:
// durations, digit grouping, byte sizes and progress bars with ETA.
package format
