package storage

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"jo3qma.com/ebay_search/internal/domain/model"
)

func TestCSVWriter_Write(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "listings.csv")
	w := NewCSVWriter(path)

	listings := []*model.Listing{
		{
			URL:         "http://cgi.ebay.com/ws/eBayISAPI.dll?ViewItem&item=1234567890",
			Title:       "Vintage Camera Lens",
			ItemNumber:  1234567890,
			BidCount:    "3",
			Price:       "$5.00",
			ChangeDate:  "Aug-29 10:15",
			Description: "Item #1234567890; 3 bids; current bid $5.00",
		},
		{
			URL:      "http://cgi.ebay.com/ws/eBayISAPI.dll?ViewItem&item=9876543210",
			Title:    "Old Film Roll, boxed",
			BidCount: model.BidCountNone,
			Price:    "$2.00",
		},
	}
	if err := w.Write(context.Background(), listings); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows got %d, want header + 2", len(records))
	}
	if records[0][0] != "item_number" {
		t.Fatalf("header got %v", records[0])
	}
	if records[1][1] != "Vintage Camera Lens" {
		t.Fatalf("title got %q", records[1][1])
	}
	// カンマを含むタイトルも1フィールドに収まる
	if records[2][1] != "Old Film Roll, boxed" {
		t.Fatalf("quoted title got %q", records[2][1])
	}
}
