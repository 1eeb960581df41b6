package memguard

import (
	"fmt"
	"sync/atomic"
)

// ErrorCallback observes a fatal allocation message before the panic.
type ErrorCallback func(msg string)

var errorCallback atomic.Pointer[ErrorCallback]

// SetErrorCallback installs fn as the observer for fatal allocation errors.
// A nil fn removes the observer.
func SetErrorCallback(fn ErrorCallback) {
	if fn == nil {
		errorCallback.Store(nil)
		return
	}
	errorCallback.Store(&fn)
}

// Fatal reports err through the error callback and panics with it.
// It never returns.
func Fatal(err error) {
	if cb := errorCallback.Load(); cb != nil {
		(*cb)(err.Error())
	}
	panic(err)
}

func fatalf(base error, format string, args ...any) {
	Fatal(fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...)))
}
