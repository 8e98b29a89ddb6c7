package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/sleepdiary/internal"
	"github.com/yourname/sleepdiary/internal/advice"
	"github.com/yourname/sleepdiary/internal/api"
	"github.com/yourname/sleepdiary/internal/config"
	"github.com/yourname/sleepdiary/internal/service"
	"github.com/yourname/sleepdiary/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type application struct {
	logger        internal.Logger
	records       storage.SleepRecordRepository
	completer     service.Completer
	defaultUser   string
	adviceTimeout time.Duration
}

func (a *application) Logger() internal.Logger                { return a.logger }
func (a *application) Records() storage.SleepRecordRepository { return a.records }
func (a *application) Completer() service.Completer           { return a.completer }
func (a *application) DefaultUser() string                    { return a.defaultUser }
func (a *application) AdviceTimeout() time.Duration           { return a.adviceTimeout }

func buildLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	sugar, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer sugar.Sync()
	logger := internal.NewZapLogger(sugar)

	records, err := storage.NewRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	app := &application{
		logger:        logger,
		records:       records,
		completer:     advice.NewAnthropicCompleter(cfg.AdviceModel),
		defaultUser:   cfg.DefaultUser,
		adviceTimeout: cfg.AdviceTimeout,
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.RequestIDMiddleware())
	r.Use(api.CORSMiddleware(cfg.CORSOrigin))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.RegisterRoutes(r, app)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("server running on :%d (backend=%s)", cfg.Port, cfg.Backend)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Infof("received shutdown signal: %s", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server stopped unexpectedly: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}

	if err := records.Close(); err != nil {
		logger.Errorf("closing storage failed: %v", err)
	}
}
