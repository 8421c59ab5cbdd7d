package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"jo3qma.com/ebay_search/internal/domain/model"
)

// CSVWriter は出品一覧をCSVファイルに保存します
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write はすべての出品を1ファイルに書き出します。
// 出力先ディレクトリが無ければ作成します
func (w *CSVWriter) Write(_ context.Context, listings []*model.Listing) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"item_number", "title", "price", "bid_count", "change_date", "url", "description"})
	for _, l := range listings {
		writer.Write([]string{
			strconv.FormatInt(l.ItemNumber, 10),
			l.Title,
			l.Price,
			l.BidCount,
			l.ChangeDate,
			l.URL,
			l.Description,
		})
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}
	return nil
}
