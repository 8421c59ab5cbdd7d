package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"jo3qma.com/ebay_search/internal/domain/model"
)

// searchRunner はハンドラーが必要とする最小のユースケース窓口です
type searchRunner interface {
	SearchAll(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error)
}

// SearchHandler はHTTP APIのハンドラー実装です
// プロトコル層（JSON）とドメイン層（usecase）を橋渡しします
type SearchHandler struct {
	uc searchRunner
}

// NewSearchHandler は新しいSearchHandlerインスタンスを作成します
func NewSearchHandler(uc searchRunner) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// NewRouter はルーティングを設定したginエンジンを返します
func NewRouter(h *SearchHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/api/search", h.Search)
	return r
}

type listingResponse struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	ItemNumber  int64  `json:"item_number,omitempty"`
	BidCount    string `json:"bid_count"`
	Price       string `json:"price"`
	ChangeDate  string `json:"change_date"`
	Description string `json:"description"`
}

type searchResponse struct {
	Query      string            `json:"query"`
	TotalCount int64             `json:"total_count,omitempty"`
	Pages      int               `json:"pages"`
	Listings   []listingResponse `json:"listings"`
}

// Search は検索を実行して結果一覧をJSONで返します
func (h *SearchHandler) Search(c *gin.Context) {
	keywords := c.Query("q")
	if keywords == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	result, err := h.uc.SearchAll(c.Request.Context(), model.SearchQuery{Keywords: keywords})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// ドメインモデルをレスポンスに変換
	resp := searchResponse{
		Query:      keywords,
		TotalCount: result.TotalCount,
		Pages:      result.Pages,
		Listings:   make([]listingResponse, 0, len(result.Listings)),
	}
	for _, l := range result.Listings {
		resp.Listings = append(resp.Listings, listingResponse{
			URL:         l.URL,
			Title:       l.Title,
			ItemNumber:  l.ItemNumber,
			BidCount:    l.BidCount,
			Price:       l.Price,
			ChangeDate:  l.ChangeDate,
			Description: l.Description,
		})
	}
	c.JSON(http.StatusOK, resp)
}
