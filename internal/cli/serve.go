package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/drafthaus/orthodraw/internal/server"
	"github.com/drafthaus/orthodraw/pkg/drawing/styles"
	apperrors "github.com/drafthaus/orthodraw/pkg/errors"
	"github.com/drafthaus/orthodraw/pkg/session"
)

// shutdownTimeout bounds how long in-flight requests may finish after the
// serve command is interrupted.
const shutdownTimeout = 5 * time.Second

// cleanupInterval is how often expired sessions are swept.
const cleanupInterval = 10 * time.Minute

// serveCommand creates the serve command exposing the drawing engine over
// HTTP. The server renders one-shot drawings from query parameters and
// supports the calculate-then-resize session flow; see the server package
// for the route list.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		themeName string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projection drawings over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if themeName == "" {
				themeName = cfg.Render.Theme
			}
			if err := apperrors.ValidateTheme(themeName); err != nil {
				return err
			}

			ttl := time.Duration(cfg.Server.SessionTTLMinutes) * time.Minute
			if ttl <= 0 {
				ttl = session.DefaultTTL
			}
			return c.runServe(cmd.Context(), addr, themeName, ttl)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8322)")
	cmd.Flags().StringVar(&themeName, "theme", "", "default visual theme: paper (default), blueprint")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, themeName string, ttl time.Duration) error {
	logger := loggerFromContext(ctx)
	theme, _ := styles.ByName(themeName)

	store := session.NewMemoryStore()
	srv := server.New(logger, store, server.WithTheme(theme), server.WithSessionTTL(ttl))

	httpSrv := &http.Server{
		Addr:    addr,
		Handler: srv.Handler(),
	}

	// Sweep expired sessions until shutdown.
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := store.Cleanup(ctx); err != nil {
					logger.Warn("session cleanup failed", "err", err)
				}
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "serve %s", addr)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
