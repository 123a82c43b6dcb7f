package main

import (
	"fmt"
	"os"

	"github.com/ytget/blinkratio/internal/cli"
	"github.com/ytget/blinkratio/internal/reference"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	catalog, err := reference.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load reference catalog: %v\n", err)
		os.Exit(1)
	}

	os.Exit(cli.New(os.Stdout, os.Stderr, catalog, version).Run(os.Args[1:]))
}
