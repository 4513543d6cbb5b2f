package main

import (
	"fmt"
	"os"

	"github.com/jenian/cfgscan/internal/commands"
	"github.com/jenian/cfgscan/internal/output"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := commands.NewRootCommand(Version).Execute(); err != nil {
		fmt.Fprint(os.Stderr, output.FormatError(err))
		os.Exit(1)
	}
}
