//go:build bigcalc_debug

package magnitude

const debugChecks = true
