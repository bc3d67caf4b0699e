// Package commands implements the CLI for the seek file finder.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/adapters/config"  //nolint:depguard // Default config file name
	"go.trai.ch/seek/internal/adapters/process" //nolint:depguard // Hidden worker flags
	"go.trai.ch/seek/internal/app"
	"go.trai.ch/seek/internal/build"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for seek.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "seek [-R] [-i] <searchRoot> [filename ...]",
		Short: "Find files by name below a directory, one concurrent search per name",
		Long: "seek looks for each given file name below searchRoot and prints, per name,\n" +
			"the first matching path or \"Not found\". Every name is searched by its own task.\n\n" +
			"Defaults for recursive, ignoreCase, mode and color are read from .seek.yaml in the\n" +
			"working directory when present, so a config file can turn on recursion without -R.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          c.validateArgs,
		RunE:          c.run,
	}

	flags := rootCmd.Flags()
	flags.BoolP("recursive", "R", false, "Search all subdirectories of the search root")
	flags.BoolP("ignore-case", "i", false, "Match file names case-insensitively (ASCII)")
	flags.String("mode", string(domain.ModeGoroutine), "Task execution mode: goroutine or process")
	flags.String("color", string(domain.ColorAuto), "Colorize output: auto, always or never")
	flags.StringP("config", "c", config.DefaultFilename, "Path to the config file")
	flags.BoolP("verbose", "v", false, "Log dispatch and reaping of tasks to stderr")

	flags.Bool(process.WorkerFlag, false, "Run a single search as worker process")
	flags.String(process.OutputLockFlag, "", "Lock file that serializes worker output")
	_ = flags.MarkHidden(process.WorkerFlag)
	_ = flags.MarkHidden(process.OutputLockFlag)

	// Registered after seek's own flags: cobra gives --version the -v shorthand
	// only while it is still free.
	rootCmd.InitDefaultVersionFlag()
	flags.Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	flags.Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		printUsage(cmd)
		return errors.Join(domain.ErrArgument, err)
	})

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects help and usage text. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func (c *CLI) validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage(cmd)
		return errors.Join(domain.ErrArgument, domain.ErrMissingRoot)
	}

	worker, _ := cmd.Flags().GetBool(process.WorkerFlag)
	if worker && len(args) != 2 {
		return errors.Join(
			domain.ErrArgument,
			zerr.With(zerr.New("worker mode takes exactly one file name"), "names", len(args)-1),
		)
	}
	return nil
}

func printUsage(cmd *cobra.Command) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
}
