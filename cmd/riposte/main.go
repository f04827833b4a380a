package main

import (
	"os"

	"github.com/riposte-cli/riposte/internal/cli"
)

// Main is the entry point for the application
// It's exported to make it testable
func Main() int {
	return cli.Execute()
}

func main() {
	os.Exit(Main())
}
