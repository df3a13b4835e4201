package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/toggler"
	"github.com/aretw0/toggler/internal/presentation/tui"
	httpAdapter "github.com/aretw0/toggler/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stored artifacts over HTTP",
		Long:  `Starts an HTTP server exposing stored artifacts, their Mermaid graphs, health and Prometheus metrics. With --compile the project file is compiled and stored first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			spec, _ := cmd.Flags().GetString("store")

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(spec, logger)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			if compile, _ := cmd.Flags().GetBool("compile"); compile {
				c, err := newCompiler(cmd, reg)
				if err != nil {
					return err
				}
				path, _ := cmd.Flags().GetString("file")
				result, err := c.CompileFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				artifact := result.Artifact()
				if err := store.Save(cmd.Context(), artifact); err != nil {
					return fmt.Errorf("failed to store artifact: %w", err)
				}
				logger.Info("artifact stored", "id", artifact.ID, "project", artifact.Project)
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpAdapter.NewHandler(store, httpAdapter.WithLogger(logger), httpAdapter.WithGatherer(reg)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			tui.PrintBanner(cmd.ErrOrStderr(), toggler.Version)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				logger.Info("server listening", "addr", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)
			case <-ctx.Done():
				logger.Info("shutting down")
			}

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			return nil
		},
	}
	cmd.Flags().String("addr", ":8080", "Address to listen on")
	cmd.Flags().String("store", "memory", "Artifact store: memory, a directory or a redis:// URL")
	cmd.Flags().Bool("compile", false, "Compile --file and store it before serving")
	return cmd
}
