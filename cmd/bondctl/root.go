package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suparena/entitybond"
	"github.com/suparena/entitybond/config"
	"github.com/suparena/entitybond/internal/ctxlog"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bondctl",
		Short:         "Inspect entities and their bonded relationships",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newVersionCmd(),
		newBondsCmd(),
		newRecordsCmd(opts),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := entitybond.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "entitybond bondctl version %s\n", info.Version)
			fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
		},
	}
}

// load reads the configuration and returns a context carrying a logger that
// writes to errOut at the configured level.
func (o *rootOptions) load(ctx context.Context, errOut io.Writer) (context.Context, *config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return ctx, nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		return ctx, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	return ctxlog.WithLogger(ctx, logger), cfg, nil
}
