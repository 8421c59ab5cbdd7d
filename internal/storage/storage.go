// Package storage は収集済みの出品レコードの書き込み先を提供します
package storage

import (
	"context"

	"jo3qma.com/ebay_search/internal/domain/model"
)

// Writer は出品一覧の保存先を抽象化します
type Writer interface {
	Write(ctx context.Context, listings []*model.Listing) error
}
