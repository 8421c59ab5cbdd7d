package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"jo3qma.com/ebay_search/internal/domain/model"
	"jo3qma.com/ebay_search/internal/domain/repository"
)

// SearchUsecase は検索のビジネスロジックを担当します。
// 各ページの解釈後にしか次ページURLは分からないため、ページは必ず
// 解決された順に1枚ずつ取得します（先読みはしない）
type SearchUsecase struct {
	repo     repository.SearchResultRepository
	logger   *zap.Logger
	maxPages int
}

// NewSearchUsecase は新しいSearchUsecaseインスタンスを作成します。
// maxPagesが0以下ならページ数の上限を設けません
func NewSearchUsecase(repo repository.SearchResultRepository, logger *zap.Logger, maxPages int) *SearchUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchUsecase{
		repo:     repo,
		logger:   logger,
		maxPages: maxPages,
	}
}

// SearchAll は次ページが無くなるまで結果ページを辿り、レコードをページ順に
// 集約します。同じ出品（URL + item番号）がページをまたいで現れた場合は
// 最初の1件だけを残します。概算総数は最初に検出された値を採用します。
//
// 途中のページで失敗した場合も、それまでに集めたレコードを結果に入れて
// エラーと一緒に返します。部分的な結果の方が全損よりも望ましいためです
func (u *SearchUsecase) SearchAll(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	result := &model.SearchResult{}
	seen := make(map[string]bool)

	page, err := u.repo.Search(ctx, query)
	for {
		if page != nil {
			result.Pages++
			if result.TotalCount == 0 {
				result.TotalCount = page.TotalCount
			}
			for _, l := range page.Listings {
				key := fmt.Sprintf("%s#%d", l.URL, l.ItemNumber)
				if seen[key] {
					continue
				}
				seen[key] = true
				result.Listings = append(result.Listings, l)
			}
		}

		if err != nil {
			return result, err
		}
		if page == nil || page.NextURL == "" {
			break
		}
		if u.maxPages > 0 && result.Pages >= u.maxPages {
			u.logger.Warn("page limit reached",
				zap.Int("pages", result.Pages),
				zap.String("next", page.NextURL),
			)
			break
		}

		page, err = u.repo.NextPage(ctx, page.NextURL)
	}

	u.logger.Info("search finished",
		zap.String("keywords", query.Keywords),
		zap.Int("pages", result.Pages),
		zap.Int("listings", len(result.Listings)),
		zap.Int64("total", result.TotalCount),
	)
	return result, nil
}
