// Package goroutine launches background work that must not take the
// process down with it.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"inqboard/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine and converts a panic into an error
// log carrying the goroutine name and stack trace. The server loop and
// other long-lived goroutines go through here so a single panic cannot
// kill the whole binary.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("recovered from panic in background goroutine",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
