// Package logging provides the structured logging interface used across
// bigcalc. It abstracts the underlying implementation so that the
// orchestration and CLI layers log consistently, with zerolog as the default
// backend and the standard library logger as a fallback.
package logging
