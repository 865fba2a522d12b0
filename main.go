package main

import (
	"os"

	"github.com/datapipe/spfetch/internal/fetch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Not-found is a reported outcome, not an error: the localized
		// message was already printed, only the exit code remains.
		if fetch.IsNotFound(err) {
			os.Exit(1)
		}

		exitOnError(err)
	}
}
