// Package calc parses and evaluates single binary integer expressions such
// as "123 * 456" or "divmod 0xff 7". It is shared by the one-shot command
// line mode, the REPL and the TUI, and routes multiplication and division
// through the strategy chosen by the user.
package calc
