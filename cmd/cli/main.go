package main

import (
	"fmt"
	"os"

	"github.com/de-tools/biz-pulse/pkg/runtime/terminal"
	"github.com/de-tools/biz-pulse/pkg/services/healthcheck"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Pipeline: healthcheck.NewPipeline(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
