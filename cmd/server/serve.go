package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/ygodeck/internal/api"
	"github.com/youruser/ygodeck/internal/i18n"
	imagepkg "github.com/youruser/ygodeck/internal/image"
	"github.com/youruser/ygodeck/internal/session"
)

func serve(ctx context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := session.NewStore(cfg.Sessions.Max, newCatalog(cfg, logger), logger.Named("session"))
	if err != nil {
		return err
	}
	tr, err := i18n.New(cfg.Language)
	if err != nil {
		return err
	}
	fetcher := imagepkg.NewFetcher(cfg.Image.Timeout, cfg.Image.MaxParallel, logger.Named("image"))

	h := api.NewHandler(store, tr, imagepkg.NewRenderer(fetcher), logger)
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.NewRouter(h, logger.Named("http")),
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
