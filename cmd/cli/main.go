package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/isobench/pkg/runtime/terminal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Output:    os.Stdout,
		LogOutput: os.Stderr,
	})

	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
