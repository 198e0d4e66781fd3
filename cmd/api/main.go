package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/api"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/service"
	mongodb "github.com/GustavoTiagoSilva/simplified-twitter/internal/infrastructure/db/mongo"
	redisdb "github.com/GustavoTiagoSilva/simplified-twitter/internal/infrastructure/db/redis"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/infrastructure/queue"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/pkg/config"
	"github.com/GustavoTiagoSilva/simplified-twitter/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "simplified-twitter",
	})

	if cfg.Token.SigningKey == "" {
		log.Fatal().Msg("TOKEN_SIGNING_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := mongodb.SeedRoles(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("role catalog seed failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, api.RouterConfig{
		TokenIssuer: cfg.Token.Issuer,
		SigningKey:  []byte(cfg.Token.SigningKey),
		TokenTTL:    time.Duration(cfg.Token.TTLSeconds) * time.Second,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
