package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/adapters/process" //nolint:depguard // Hidden worker flags
	"go.trai.ch/seek/internal/core/domain"
)

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	c.app.SetVerbose(verbose)

	if worker, _ := flags.GetBool(process.WorkerFlag); worker {
		return c.runWorker(cmd, args)
	}

	configPath, _ := flags.GetString("config")
	opts, err := c.app.LoadOptions(configPath, flags.Changed("config"))
	if err != nil {
		return err
	}

	opts, err = applyFlags(cmd, opts)
	if err != nil {
		return err
	}

	return c.app.Run(cmd.Context(), domain.SearchConfig{
		Root:    args[0],
		Names:   args[1:],
		Options: opts,
	})
}

// runWorker serves a single search for the process spawner. The config file is not
// consulted: the parent forwards everything the worker needs as flags.
func (c *CLI) runWorker(cmd *cobra.Command, args []string) error {
	opts, err := applyFlags(cmd, domain.DefaultOptions())
	if err != nil {
		return err
	}
	lockPath, _ := cmd.Flags().GetString(process.OutputLockFlag)

	req := domain.SearchRequest{
		Root:            args[0],
		Target:          args[1],
		Recursive:       opts.Recursive,
		CaseInsensitive: opts.CaseInsensitive,
	}
	return c.app.RunWorker(cmd.Context(), req, opts.Color, lockPath)
}

// applyFlags overrides opts with the flags given explicitly on the command line.
func applyFlags(cmd *cobra.Command, opts domain.Options) (domain.Options, error) {
	flags := cmd.Flags()

	if flags.Changed("recursive") {
		opts.Recursive, _ = flags.GetBool("recursive")
	}
	if flags.Changed("ignore-case") {
		opts.CaseInsensitive, _ = flags.GetBool("ignore-case")
	}
	if flags.Changed("mode") {
		s, _ := flags.GetString("mode")
		mode, err := domain.ParseSpawnMode(s)
		if err != nil {
			return opts, errors.Join(domain.ErrArgument, err)
		}
		opts.Mode = mode
	}
	if flags.Changed("color") {
		s, _ := flags.GetString("color")
		color, err := domain.ParseColorMode(s)
		if err != nil {
			return opts, errors.Join(domain.ErrArgument, err)
		}
		opts.Color = color
	}
	return opts, nil
}
