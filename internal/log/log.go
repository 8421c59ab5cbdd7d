// Package log はzapの組み立てを一箇所にまとめます。
// 標準出力向けと、lumberjackでローテーションするファイル向けのコアを提供します
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger はコアと追加オプションからzapロガーを組み立てます
func NewLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(core, append(defaultOptions(), options...)...)
}

// NewStdoutCore は標準出力へ書き出すコアを返します
func NewStdoutCore(enabler zapcore.LevelEnabler) zapcore.Core {
	return zapcore.NewCore(defaultEncoder(), zapcore.Lock(zapcore.AddSync(os.Stdout)), enabler)
}

// NewFileCore はlumberjackでローテーションしながらファイルへ書き出すコアを返します。
// lumberjackはSyncを持たないため、プロセス終了前に閉じるためのCloserを併せて返します
func NewFileCore(path string, enabler zapcore.LevelEnabler) (zapcore.Core, io.Closer) {
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 5,
		LocalTime:  true,
		Compress:   true,
	}
	return zapcore.NewCore(defaultEncoder(), zapcore.AddSync(writer), enabler), writer
}

// LevelFor は設定の冗長度3段階をzapのレベルに対応付けます。
// 0: 警告のみ, 1: 動作の追跡, 2: 生マークアップのダンプまで
func LevelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func defaultEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func defaultOptions() []zap.Option {
	var stackTraceLevel zap.LevelEnablerFunc = func(level zapcore.Level) bool {
		return level >= zapcore.DPanicLevel
	}
	return []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(stackTraceLevel),
	}
}
