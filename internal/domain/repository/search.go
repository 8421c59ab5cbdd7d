package repository

import (
	"context"

	"jo3qma.com/ebay_search/internal/domain/model"
)

// SearchResultRepository は検索結果ページの取得方法を抽象化します。
// 実装がスクレイピングなのか、API経由なのかをドメイン層は知りません。
// これにより、腐敗防止層（Anti-Corruption Layer）のパターンを実現します。
type SearchResultRepository interface {
	// Search は検索条件から最初の結果ページを取得します
	Search(ctx context.Context, query model.SearchQuery) (*model.SearchResultsPage, error)

	// NextPage は前ページで解決された次ページURLから続きを取得します。
	// NextURLは現在ページの解釈後にしか分からないため、順番に呼ぶ必要があります
	NextPage(ctx context.Context, pageURL string) (*model.SearchResultsPage, error)
}
