package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/biz-pulse/pkg/runtime/terminal/commands"
	"github.com/de-tools/biz-pulse/pkg/runtime/terminal/export"
	"github.com/de-tools/biz-pulse/pkg/services/healthcheck"
)

// CLI represents the command-line interface
type CLI struct {
	pipeline *healthcheck.Pipeline
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Pipeline *healthcheck.Pipeline
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Pipeline == nil {
		opts.Pipeline = healthcheck.NewPipeline()
	}

	cli := &CLI{
		pipeline: opts.Pipeline,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pulse",
		Short: "Daily business health check tool",
	}

	cmd.AddCommand(commands.NewCheckCmd(cli.pipeline, cli.reporter))

	return cmd
}
