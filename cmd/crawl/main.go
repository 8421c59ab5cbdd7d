// crawlは一度だけ検索を実行して、結果を設定済みの保存先へ書き出すコマンドです
package main

import (
	"context"
	"flag"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"jo3qma.com/ebay_search/internal/config"
	"jo3qma.com/ebay_search/internal/domain/model"
	"jo3qma.com/ebay_search/internal/infrastructure/ebay"
	"jo3qma.com/ebay_search/internal/log"
	"jo3qma.com/ebay_search/internal/storage"
	"jo3qma.com/ebay_search/internal/usecase"
)

func main() {
	var (
		query    = flag.String("q", "", "検索キーワード（必須）")
		maxPages = flag.Int("max-pages", 0, "辿るページ数の上限（0なら設定値を使う）")
	)
	flag.Parse()

	cfg := config.Load()
	if *maxPages > 0 {
		cfg.MaxPages = *maxPages
	}

	level := log.LevelFor(cfg.Verbosity)
	core := log.NewStdoutCore(level)
	if cfg.LogFile != "" {
		fileCore, closer := log.NewFileCore(cfg.LogFile, level)
		defer closer.Close()
		core = zapcore.NewTee(core, fileCore)
	}
	logger := log.NewLogger(core)
	defer logger.Sync()

	if *query == "" {
		logger.Fatal("search keywords are required (-q)")
	}

	scraper := ebay.NewSearchScraper(cfg.BaseURL, cfg.RequestTimeout, cfg.MaxRetries, logger, ebay.Verbosity(cfg.Verbosity))
	uc := usecase.NewSearchUsecase(scraper, logger, cfg.MaxPages)

	ctx := context.Background()
	result, err := uc.SearchAll(ctx, model.SearchQuery{Keywords: *query})
	if err != nil {
		// 部分的な結果でも保存する価値はあるので、ここでは落とさない
		logger.Warn("search ended with error", zap.Error(err))
	}
	if result == nil || len(result.Listings) == 0 {
		logger.Info("no listings found")
		return
	}

	if err := storage.NewCSVWriter(cfg.CSVPath).Write(ctx, result.Listings); err != nil {
		logger.Error("csv write failed", zap.Error(err))
	} else {
		logger.Info("saved listings to csv",
			zap.Int("count", len(result.Listings)),
			zap.String("path", cfg.CSVPath),
		)
	}

	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresWriter(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres connect failed", zap.Error(err))
		}
		defer pg.Close()

		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal("postgres schema failed", zap.Error(err))
		}
		if err := pg.Write(ctx, result.Listings); err != nil {
			logger.Fatal("postgres write failed", zap.Error(err))
		}
		logger.Info("saved listings to postgres", zap.Int("count", len(result.Listings)))
	}
}
