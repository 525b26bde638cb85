package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanRulev/vocadeck/internal/client"
	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/DanRulev/vocadeck/internal/repository"
	"github.com/DanRulev/vocadeck/internal/service"
	"github.com/DanRulev/vocadeck/internal/storage/cache"
	"github.com/DanRulev/vocadeck/internal/storage/db"
	"github.com/DanRulev/vocadeck/internal/tokenizer"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// app is everything the commands share: config, logger, migrated store and services.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	db       *sqlx.DB
	clients  *client.Clients
	services *service.Service
}

func openStore(ctx context.Context) (*config.Config, *zap.Logger, *sqlx.DB, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Sync()
		return nil, nil, nil, fmt.Errorf("failed init db: %w", err)
	}

	version, err := db.Migrate(ctx, conn)
	if err != nil {
		conn.Close()
		logger.Sync()
		return nil, nil, nil, fmt.Errorf("failed migrate db: %w", err)
	}
	logger.Debug("database ready", zap.String("driver", cfg.DB.Driver), zap.Int64("version", version))

	return cfg, logger, conn, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, logger, conn, err := openStore(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := client.InitClients(ctx, cfg)
	if err != nil {
		conn.Close()
		logger.Sync()
		return nil, fmt.Errorf("failed init clients: %w", err)
	}

	repos := repository.NewRepository(conn)
	services := service.InitServices(service.Deps{
		Translator: clients.Translator,
		Speech:     clients.Speech,
		Tokenizer:  tokenizer.New(tokenizer.GseLoader(cfg.Tokenizer.ChineseDict), logger),
		Memo:       cache.NewTranslations(cfg.Translator.CacheSize),
		Repo:       repos,
	}, cfg, logger)

	return &app{
		cfg:      cfg,
		log:      logger,
		db:       conn,
		clients:  clients,
		services: services,
	}, nil
}

func (a *app) Close() error {
	err := errors.Join(a.clients.Close(), a.db.Close())
	a.log.Sync()
	return err
}
