package ebay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"jo3qma.com/ebay_search/internal/domain/model"
	"jo3qma.com/ebay_search/internal/domain/repository"
)

const (
	defaultBaseURL      = "https://search.ebay.com"
	defaultItemsPerPage = 50
	searchPath          = "/search/search.dll"
)

// searchScraper はeBayの検索結果HTMLをスクレイピングして出品一覧を取得する実装です
// 腐敗防止層（Anti-Corruption Layer）として、外部サイトの不安定な構造を
// ドメインモデルに変換する責務を持ちます
type searchScraper struct {
	client     *http.Client
	baseURL    string
	maxRetries int
	interp     *Interpreter
	logger     *zap.Logger
	verbosity  Verbosity
}

// NewSearchScraper は新しいSearchResultRepositoryの実装を作成します。
// baseURL・timeout・maxRetriesはゼロ値なら既定値に落ちます
func NewSearchScraper(baseURL string, timeout time.Duration, maxRetries int, logger *zap.Logger, verbosity Verbosity) repository.SearchResultRepository {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return newSearchScraper(
		&http.Client{Timeout: timeout},
		baseURL,
		maxRetries,
		logger,
		verbosity,
	)
}

// newSearchScraper はテスト容易性のための内部コンストラクタです。
// 本番コードは NewSearchScraper を利用し、テストでは http.Client/baseURL を注入します
func newSearchScraper(client *http.Client, baseURL string, maxRetries int, logger *zap.Logger, verbosity Verbosity) repository.SearchResultRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &searchScraper{
		client:     client,
		baseURL:    baseURL,
		maxRetries: maxRetries,
		interp:     NewInterpreter(logger, verbosity),
		logger:     logger,
		verbosity:  verbosity,
	}
}

// Search は検索条件から最初の結果ページを取得します
func (s *searchScraper) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResultsPage, error) {
	u, err := url.Parse(s.baseURL + searchPath)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	per := query.ItemsPerPage
	if per <= 0 {
		per = defaultItemsPerPage
	}

	q := u.Query()
	q.Set("MfcISAPICommand", "GetResult")
	q.Set("query", query.Keywords)
	q.Set("itemsperpage", strconv.Itoa(per))
	q.Set("ht", "1")
	q.Set("SortProperty", "MetaEndSort") // サイト既定の新着順
	u.RawQuery = q.Encode()

	return s.fetchAndInterpret(ctx, u.String())
}

// NextPage は前ページで解決済みの次ページURLから続きを取得します
func (s *searchScraper) NextPage(ctx context.Context, pageURL string) (*model.SearchResultsPage, error) {
	return s.fetchAndInterpret(ctx, pageURL)
}

func (s *searchScraper) fetchAndInterpret(ctx context.Context, pageURL string) (*model.SearchResultsPage, error) {
	raw, err := fetchPageWithRetry(ctx, s.client, pageURL, s.maxRetries, s.logger)
	if err != nil {
		return nil, err
	}
	if s.verbosity >= VerbosityTrace {
		s.logger.Info("fetched page", zap.String("url", pageURL), zap.Int("bytes", len(raw)))
	}
	return s.interp.Interpret(raw, pageURL)
}
