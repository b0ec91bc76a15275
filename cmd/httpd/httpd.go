// Package httpd implements the HTTP server command for the catalog API.
package httpd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocourses/cmd/common"
	"github.com/jonesrussell/gocourses/internal/api"
	"github.com/jonesrussell/gocourses/internal/logger"
)

const (
	signalChannelBufferSize = 1
	errorChannelBufferSize  = 1
	defaultShutdownTimeout  = 30 * time.Second
)

// Command returns the httpd command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "httpd",
		Short: "Start the catalog HTTP API server",
		Long:  `Serve the topic catalog and course repository over HTTP until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Start()
		},
	}
}

// Start starts the HTTP server and runs until interrupted.
// It handles graceful shutdown on SIGINT or SIGTERM signals.
func Start() error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Build the index up front so the first request does not pay for it.
	if buildErr := deps.Catalog.Build(); buildErr != nil {
		return fmt.Errorf("failed to build catalog: %w", buildErr)
	}

	server := api.NewHTTPServer(deps.Logger, deps.Config, deps.Catalog, deps.Repository)

	deps.Logger.Info("Starting HTTP server", "addr", server.Addr)
	errChan := make(chan error, errorChannelBufferSize)
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	return runUntilInterrupt(deps.Logger, server, errChan)
}

// runUntilInterrupt runs the server until interrupted by signal or error.
func runUntilInterrupt(log logger.Interface, server *http.Server, errChan chan error) error {
	sigChan := make(chan os.Signal, signalChannelBufferSize)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case serverErr := <-errChan:
		log.Error("Server error", "error", serverErr)
		return fmt.Errorf("server error: %w", serverErr)
	case sig := <-sigChan:
		return shutdownServer(log, server, sig)
	}
}

// shutdownServer performs graceful shutdown of the HTTP server.
func shutdownServer(log logger.Interface, server *http.Server, sig os.Signal) error {
	log.Info("Shutdown signal received", "signal", sig.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	log.Info("Stopping HTTP server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to stop server", "error", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}

	log.Info("Server stopped successfully")
	return nil
}
