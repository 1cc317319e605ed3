package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/varex83/acs-lab-1/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		dir  string
		addr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve archived runs and accept uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gin.SetMode(gin.ReleaseMode)
			s, err := web.NewServer(dir, slog.Default())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{Addr: addr, Handler: s.Router()}
			errCh := make(chan error, 1)
			go func() {
				slog.Info("history server listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "data", "Directory of archived JSON runs")
	cmd.Flags().StringVar(&addr, "addr", ":18081", "Listen address")
	return cmd
}
