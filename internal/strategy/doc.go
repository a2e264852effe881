// Package strategy names the multiplication and division algorithms of the
// magnitude engine so that callers can pick one explicitly (from the -algo
// flag or the REPL) or run several side by side and compare them.
//
// Every strategy is stateless and safe for concurrent use. A math/big backed
// reference strategy is registered for each kind and serves as the oracle in
// comparison runs.
package strategy
