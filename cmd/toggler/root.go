package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/toggler"
	"github.com/aretw0/toggler/internal/logging"
	"github.com/aretw0/toggler/pkg/adapters/file"
	"github.com/aretw0/toggler/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/toggler/pkg/adapters/redis"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/persistence/middleware"
	"github.com/aretw0/toggler/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "toggler",
		Short:         "Toggler compiles avatar toggles into animation controllers",
		Long:          `Toggler reads a YAML project of menu, gesture and global toggles and compiles it into parameters, layers and menu entries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "toggles.yaml", "Project file to compile")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("prefix", "", "Prefix for toggles using prefixed parameters")

	rootCmd.AddCommand(
		newCompileCmd(),
		newGraphCmd(),
		newValidateCmd(),
		newReportCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

// newCompiler builds a compiler from the persistent flags.
func newCompiler(cmd *cobra.Command, reg prometheus.Registerer) (*toggler.Compiler, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	prefix, _ := cmd.Flags().GetString("prefix")

	opts := []toggler.Option{
		toggler.WithLogger(logger),
		toggler.WithParamPrefix(prefix),
	}
	if reg != nil {
		opts = append(opts, toggler.WithMetrics(reg))
	}
	return toggler.New(opts...)
}

// compileFlagFile compiles the project named by --file.
func compileFlagFile(cmd *cobra.Command) (*toggler.Result, error) {
	c, err := newCompiler(cmd, nil)
	if err != nil {
		return nil, err
	}
	path, _ := cmd.Flags().GetString("file")
	return c.CompileFile(cmd.Context(), path)
}

func loadFlagFile(cmd *cobra.Command) (*domain.Project, error) {
	path, _ := cmd.Flags().GetString("file")
	return file.LoadProject(path)
}

// openStore resolves a store spec: "memory", a redis:// URL or a directory.
// Every store operation is logged through logger.
func openStore(spec string, logger *slog.Logger) (ports.ArtifactStore, error) {
	var store ports.ArtifactStore
	switch {
	case spec == "" || spec == "memory":
		store = memory.NewStore()
	case strings.HasPrefix(spec, "redis://") || strings.HasPrefix(spec, "rediss://"):
		opts, err := backend.ParseURL(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		store = redisAdapter.NewFromClient(backend.NewClient(opts))
	default:
		store = file.New(spec)
	}
	return middleware.Chain(store, middleware.NewLoggingMiddleware(logger)), nil
}
