package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"jo3qma.com/ebay_search/internal/config"
	"jo3qma.com/ebay_search/internal/handler"
	"jo3qma.com/ebay_search/internal/infrastructure/ebay"
	"jo3qma.com/ebay_search/internal/log"
	"jo3qma.com/ebay_search/internal/usecase"
)

func main() {
	cfg := config.Load()

	// ロガーの組み立て。冗長度の設定がそのままログレベルになる
	level := log.LevelFor(cfg.Verbosity)
	core := log.NewStdoutCore(level)
	if cfg.LogFile != "" {
		fileCore, closer := log.NewFileCore(cfg.LogFile, level)
		defer closer.Close()
		core = zapcore.NewTee(core, fileCore)
	}
	logger := log.NewLogger(core)
	defer logger.Sync()

	// 依存関係の組み立て（依存性注入）
	// DBの代わりにScraperを注入することで、腐敗防止層のパターンを実現
	scraper := ebay.NewSearchScraper(cfg.BaseURL, cfg.RequestTimeout, cfg.MaxRetries, logger, ebay.Verbosity(cfg.Verbosity))
	uc := usecase.NewSearchUsecase(scraper, logger, cfg.MaxPages)
	h := handler.NewSearchHandler(uc)
	router := handler.NewRouter(h)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // 複数ページを辿る検索は時間がかかる
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンの設定
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// シグナル待機（Ctrl+Cなど）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
