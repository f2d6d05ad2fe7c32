package main

import (
	"os"

	"logistics-requests/cmd"
	"logistics-requests/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Error("command failed", err)
		os.Exit(1)
	}
}
