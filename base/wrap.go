package base

import "fmt"

// fmtErrorf renders "<method>: <message>: <sentinel>" while keeping
// sentinel reachable via errors.Is (the trailing %w).
func fmtErrorf(method, format string, sentinel error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, msg, sentinel)
}
