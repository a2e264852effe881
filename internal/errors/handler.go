package apperrors

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape codes used when reporting errors. A nil
// provider prints without colors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError prints a user-facing description of err and returns
// the matching exit code. A nil err prints nothing and returns ExitSuccess.
//
// Parameters:
//   - err: The error returned by an evaluation or comparison.
//   - duration: Elapsed time, printed for timeouts when non-zero.
//   - out: Destination of the message.
//   - colors: Optional color provider.
//
// Returns:
//   - int: The exit code from ExitCode.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	code := ExitCode(err)
	switch code {
	case ExitErrorTimeout:
		var timeout TimeoutError
		if errors.As(err, &timeout) {
			duration = timeout.Limit
		}
		if duration > 0 {
			fmt.Fprintf(out, "%sTimeout: the operation did not finish within %s.%s\n", yellow, duration, reset)
		} else {
			fmt.Fprintf(out, "%sTimeout: the operation did not finish in time.%s\n", yellow, reset)
		}
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sCanceled.%s\n", yellow, reset)
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sInvalid input: %v%s\n", red, err, reset)
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", red, err, reset)
	}
	return code
}
