package main

import (
	"os"

	"github.com/custodia-labs/docpatch-cli/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
