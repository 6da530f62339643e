// Package main implements todoctl, a command line client for the
// todo-tracker server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
