package main

import (
	"context"
	"os"

	"portfolio/internal/adapters/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
