package utils

import (
	"fmt"

	"go.uber.org/zap"
)

// GoSafe runs fn in a goroutine and recovers from any panic so that one bad
// item cannot take the process down. Panics are logged on the global zap logger.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("Recovered from panic in goroutine", zap.String("panic", fmt.Sprint(r)), zap.StackSkip("stack", 1))
			}
		}()
		fn()
	}()
}
