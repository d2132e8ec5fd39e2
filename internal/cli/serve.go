package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tableaxis/pkg/api"
	"github.com/matzehuels/tableaxis/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command, which exposes the switch over
// HTTP until the process is interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var maxBody int64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the switch over HTTP",
		Long: `Serve the switch over HTTP.

Endpoints:
  POST /v1/switch    switch the table selected in the posted document
  POST /v1/inspect   preview the grid of the selected table
  GET  /v1/version   build information
  GET  /healthz      liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			s := api.NewServer(pipeline.NewRunner(nil, c.Logger), c.Logger)
			if maxBody > 0 {
				s.MaxBodyBytes = maxBody
			}
			return c.serve(cmd.Context(), addr, s.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else 127.0.0.1:8080)")
	cmd.Flags().Int64Var(&maxBody, "max-body", api.DefaultMaxBodyBytes, "maximum request body size in bytes")
	return cmd
}

// serve runs handler on addr until ctx is done, then shuts down gracefully.
func (c *CLI) serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
