// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

var (
	// globals used to patch over calls to os.Exit() during test

	logFatalf = log.Fatalf
	osExit    = os.Exit
)

// syncFatalln flushes buffered log entries before exiting
func syncFatalln(logger *zap.Logger, msg string, err error) {
	_ = logger.Sync()
	wrapFatalln(msg, err)
}

func wrapFatalln(msg string, err error) {
	if err == nil {
		logFatalf("%s", msg)
	} else {
		logFatalf("%v", fmt.Errorf(msg+": %w", err))
	}
}
