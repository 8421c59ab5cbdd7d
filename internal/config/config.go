// Package config は実行時設定を環境変数から読み込みます。
// すべての項目に既定値があり、EBAY_SEARCH_ プレフィックスの環境変数で上書きできます
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string        // APIサーバの待ち受けポート
	BaseURL        string        // 検索対象サイトのベースURL
	MaxPages       int           // 1回の検索で辿るページ数の上限。0以下で無制限
	MaxRetries     int           // ページ取得の再試行回数
	RequestTimeout time.Duration // HTTPクライアントのタイムアウト
	Verbosity      int           // 診断出力の段階 (0: なし, 1: 追跡, 2: ダンプ)
	LogFile        string        // 空なら標準出力のみ
	CSVPath        string        // crawlコマンドのCSV出力先
	DatabaseURL    string        // 空ならPostgres書き込みを行わない
}

// Load は既定値の上に環境変数を重ねた設定を返します
func Load() *Config {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("base_url", "https://search.ebay.com")
	v.SetDefault("max_pages", 10)
	v.SetDefault("max_retries", 3)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("verbosity", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("csv_path", "output/listings.csv")
	v.SetDefault("database_url", "")

	v.SetEnvPrefix("EBAY_SEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		Port:           v.GetString("port"),
		BaseURL:        v.GetString("base_url"),
		MaxPages:       v.GetInt("max_pages"),
		MaxRetries:     v.GetInt("max_retries"),
		RequestTimeout: v.GetDuration("request_timeout"),
		Verbosity:      v.GetInt("verbosity"),
		LogFile:        v.GetString("log_file"),
		CSVPath:        v.GetString("csv_path"),
		DatabaseURL:    v.GetString("database_url"),
	}
}
