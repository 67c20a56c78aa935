package main

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/programs"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/setup"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/setup/logger"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	capacity   int
	plain      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "dsa",
		Short: "Menu driven data structure exercises",
		Long: "dsa runs interactive exercises for linked lists, a stack, a circular queue,\n" +
			"a binary tree and a binary search tree. Without a subcommand it opens a\n" +
			"launcher menu listing every exercise.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := wire(cmd, flags)
			if err != nil {
				return err
			}
			return deps.Runner.Run(cmd.Context(), programs.Launcher(deps.Catalog, deps.Settings))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to the YAML config (overrides DSA_CONFIG_PATH)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&flags.capacity, "capacity", 0, "circular queue capacity")
	pf.BoolVar(&flags.plain, "plain", false, "disable styled menu headers")

	for _, entry := range programs.Catalog() {
		root.AddCommand(newExerciseCmd(entry, flags))
	}
	root.AddCommand(newListCmd())

	return root
}

func newExerciseCmd(entry programs.Entry, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     entry.Name,
		Aliases: entry.Aliases,
		Short:   entry.Short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := wire(cmd, flags)
			if err != nil {
				return err
			}
			p, err := entry.Build(deps.Settings)
			if err != nil {
				return fmt.Errorf("failed to build %s: %w", entry.Name, err)
			}
			return deps.Runner.Run(cmd.Context(), p)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, entry := range programs.Catalog() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Name, entry.Short)
			}
			return nil
		},
	}
}

// wire loads config from file and env, applies explicitly set flags on top
// and builds the dependencies for cmd's streams.
func wire(cmd *cobra.Command, flags *rootFlags) (*setup.Dependencies, error) {
	cfg, err := setup.LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("capacity") {
		cfg.QueueCapacity = flags.capacity
	}
	if pf.Changed("plain") {
		cfg.Styled = !flags.plain
	}

	appLogger := logger.New(cfg.LogLevel, cmd.ErrOrStderr())
	deps, err := setup.Wire(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), &appLogger)
	if err != nil {
		return nil, err
	}

	deps.Logger.Debug().
		Str("command", cmd.Name()).
		Str("log_level", cfg.LogLevel).
		Int("queue_capacity", deps.Settings.QueueCapacity).
		Bool("styled", cfg.Styled).
		Msg("configuration loaded")

	return deps, nil
}
