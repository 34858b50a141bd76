package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/billup/billup-web/pkg/log"
)

// RecoverAppPanic turns a panic of the calling function into *err. It must be deferred directly.
func RecoverAppPanic(ctx context.Context, logger log.Logger, err *error) {
	msg := recover()
	if msg == nil {
		return
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	*err = fmt.Errorf("app failed with panic: %v", msg)
}
