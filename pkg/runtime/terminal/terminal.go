package terminal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/de-tools/isobench/pkg/runtime/logging"
	"github.com/de-tools/isobench/pkg/runtime/terminal/commands"
	"github.com/de-tools/isobench/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	globals  *commands.Globals
	reporter *export.Reporter
	logOut   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	Clock     func() time.Time
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	cli := &CLI{
		globals:  &commands.Globals{Clock: opts.Clock},
		reporter: export.NewReporter(opts.Output),
		logOut:   opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.LogOutput)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides the process arguments, mostly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "isobench",
		Short:         "Compare virtual machine and container benchmark results",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logging.New(cli.logOut, cli.globals.Verbose)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	cmd.PersistentFlags().StringVarP(&cli.globals.ConfigPath, "config", "c", "", "Path to an isobench YAML config file")
	cmd.PersistentFlags().StringVar(&cli.globals.TestbedPath, "testbed", "", "Path to an ini file describing the test environment")
	cmd.PersistentFlags().BoolVarP(&cli.globals.Verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.globals, cli.reporter))
	cmd.AddCommand(commands.NewCompareCmd(cli.globals, cli.reporter))
	cmd.AddCommand(commands.NewServeCmd(cli.globals))

	return cmd
}
