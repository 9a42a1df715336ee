// SPDX-License-Identifier: MIT

// Command strnum exposes the exact-arithmetic and text primitives on the
// command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/strnum/internal/config"
	"github.com/katalvlaran/strnum/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the global flags and the state built from them.
type app struct {
	configPath string
	verbose    bool
	jsonLog    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{logger: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Error("command failed", zap.Error(err))
		_ = a.logger.Sync()
		fmt.Fprintln(stderr, newStyles(stderr).err.Render("error: "+err.Error()))
		return 1
	}

	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strnum",
		Short: "Exact integer arithmetic and Unicode text analysis",
		Long: `strnum runs correctness-first primitives from the command line.

Integer operations fail loudly on overflow, truncation and division by zero
instead of wrapping. Text operations work on Unicode code points, so a
character outside the Basic Multilingual Plane is never split in two.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolvePath(a.configPath)
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			format := cfg.Log.Format
			if a.jsonLog {
				format = logging.FormatJSON
			}
			logger, err := logging.New(cfg.Log.Level, format, a.verbose)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			a.logger.Debug("config loaded",
				zap.String("path", path),
				zap.String("lcp.strategy", cfg.LCP.Strategy),
				zap.Int("permute.max_length", cfg.Permute.MaxLength))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or "+config.DefaultPath+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.jsonLog, "json-log", false, "log as JSON")

	root.AddCommand(
		a.exactCmd(),
		a.freqCmd(),
		a.anagramCmd(),
		a.lcpCmd(),
		a.permuteCmd(),
		a.inspectCmd(),
		a.removeCmd(),
	)

	return root
}
