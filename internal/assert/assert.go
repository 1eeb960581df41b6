// Package assert holds the debug-build switch for caller-contract checks.
//
// Checks are compiled in only when building with the hashkit_debug tag:
//
//	go test -tags hashkit_debug ./...
//
// Release builds see Enabled == false and the guarded blocks are removed by
// the compiler.
package assert

import "fmt"

// That panics with err wrapped with msg when cond is false and checks are enabled.
func That(cond bool, err error, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
