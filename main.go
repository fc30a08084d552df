package main

import (
	"os"

	"github.com/reqfile/reqfile-cli/cmd"
	"github.com/reqfile/reqfile-cli/internal/logging"
)

func main() {
	defer logging.Close()
	if err := cmd.Execute(); err != nil {
		logging.Error(err.Error())
		os.Exit(1)
	}
}
