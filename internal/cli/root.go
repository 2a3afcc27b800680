// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spiveeworks/modal-input-prompt/commands"
	"github.com/spiveeworks/modal-input-prompt/internal/config"
	"github.com/spiveeworks/modal-input-prompt/internal/logging"
	"github.com/spiveeworks/modal-input-prompt/internal/prompt"
	"github.com/spiveeworks/modal-input-prompt/internal/repl"
	"github.com/spiveeworks/modal-input-prompt/internal/ui/styles"
)

// flags holds the values of the root command flags.
type flags struct {
	configPath string
	prompt     string
	noColor    bool
	noTerminal bool
	logLevel   string
	logFile    string
}

// NewRootCommand builds the modal-prompt command tree.
func NewRootCommand() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "modal-prompt",
		Short: "Line-oriented command prompt",
		Long: `modal-prompt reads commands one line at a time and runs them.

Type 'help' for a list of commands, or 'help <command>' for details.
Input ends at end of file or with the 'exit' command.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}
			return runREPL(cmd, cfg)
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	pf := root.Flags()
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.modal-prompt/config.toml)")
	pf.StringVar(&f.prompt, "prompt", config.DefaultPrompt, "prompt shown before each line")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&f.noTerminal, "no-terminal", false, "read plain lines even on a terminal")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: off, debug, info, warn, error")
	pf.StringVar(&f.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newVersionCommand())
	return root
}

// loadConfig merges the config file, environment, and flags, in
// increasing order of precedence.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFromPath(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, &ConfigError{Path: f.configPath, Err: err}
	}

	set := cmd.Flags().Changed
	if set("prompt") {
		cfg.Prompt = f.prompt
	}
	if f.noColor {
		cfg.UI.Color = config.ColorNever
	}
	if f.noTerminal {
		cfg.UI.Terminal = config.TerminalNever
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("log-file") {
		cfg.Log.File = f.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: f.configPath, Err: err}
	}
	return cfg, nil
}

func runREPL(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return &ConfigError{Err: err}
	}
	defer logger.Sync()

	registry := commands.NewRegistry(logger)
	repl.RegisterBuiltins(registry)
	for _, s := range registry.Shadowed() {
		logger.Warn("command shadowed by earlier registration",
			zap.Stringer("winner", s.Winner.Phrase),
			zap.Stringer("shadowed", s.Loser.Phrase))
	}

	opts := []prompt.Option{
		prompt.WithCompleter(commands.NewCompleter(registry)),
		prompt.WithHistorySize(cfg.UI.HistorySize),
	}
	if cfg.UI.Terminal == config.TerminalNever {
		opts = append(opts, prompt.WithoutTerminal())
	}

	out := cmd.OutOrStdout()
	src := prompt.Open(cmd.InOrStdin(), out, opts...)
	defer src.Close()

	st := styles.New(out, cfg.UI.Color)
	promptText := cfg.Prompt
	if _, plain := src.(*prompt.Reader); plain {
		// liner measures the prompt itself and cannot account for escapes.
		promptText = st.Prompt(promptText)
	}

	r := &repl.REPL{
		Source:   src,
		Out:      out,
		Registry: registry,
		Prompt:   promptText,
		Styles:   st,
		Logger:   logger,
	}
	if err := r.Run(cmd.Context()); err != nil {
		return &CommandError{Command: cmd.Name(), Action: "read loop", Err: err}
	}
	return nil
}

// Execute runs the root command against the process's stdio and returns
// the exit code.
func Execute() int {
	root := NewRootCommand()
	err := root.ExecuteContext(context.Background())
	if err != nil {
		st := styles.New(os.Stderr, styles.ModeAuto)
		fmt.Fprintln(os.Stderr, st.Error("Error: "+err.Error()))
	}
	return GetExitCode(err)
}
