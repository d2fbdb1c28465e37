package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tribiz/posscreen/internal/config"
	"github.com/tribiz/posscreen/internal/model"
	"github.com/tribiz/posscreen/internal/repository/backend"
	"github.com/tribiz/posscreen/internal/service"
	"github.com/tribiz/posscreen/pgk/httpclient"
	"github.com/tribiz/posscreen/pgk/logger"
	"go.uber.org/zap"

	httpController "github.com/tribiz/posscreen/internal/controller/http"
)

// NewRouter собирает экран кассы поверх клиента бэкенда
func NewRouter(cfg config.Config, lg *zap.SugaredLogger) *chi.Mux {
	client := httpclient.NewClient(httpclient.Config{
		Timeout: cfg.RequestTimeout,
	})
	repo := backend.New(cfg.APIURL, client)

	screen := service.New(repo, repo, lg, model.DefaultOperatorID, cfg.RejectInvalidPrice)

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(screen, lg)

	return httpController.InitRoutes(router, handlers)
}

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: NewRouter(cfg, lg),
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting screen on %s, backend %s", cfg.RunAddress, cfg.APIURL)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
