package ebay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// fetchPage は指定されたURLからページの生テキストを取得します。
// ツリー構築の前にマークアップ修復を挟むため、パース前の文字列を返します
func fetchPage(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	// 一般的なブラウザに見せかけるUser-Agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			fmt.Printf("warning: failed to close response body: %v\n", closeErr)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch page: status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}
	return string(body), nil
}

// fetchPageWithRetry はfetchPageを指数バックオフ付きで再試行します。
// レート制限を受けている可能性があるため、失敗のたびに待ち時間を倍にします
func fetchPageWithRetry(ctx context.Context, client *http.Client, url string, maxRetries int, logger *zap.Logger) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		body, err := fetchPage(ctx, client, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt < maxRetries {
			wait := time.Duration(1<<uint(attempt)) * time.Second
			logger.Warn("fetch failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max", maxRetries),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("all %d attempts failed: %w", maxRetries, lastErr)
}
