package ebay

import (
	"testing"

	"jo3qma.com/ebay_search/internal/domain/model"
)

func TestNormalizeBidCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: model.BidCountNone},
		{name: "whitespace only", in: "  \n\t ", want: model.BidCountNone},
		{name: "lone hyphen", in: "-", want: model.BidCountNone},
		{name: "hyphen padded with nbsp", in: " - ", want: model.BidCountNone},
		{name: "hyphen padded with mixed whitespace", in: "   - \n", want: model.BidCountNone},
		{name: "plain count", in: "3", want: "3"},
		{name: "single bid", in: " 1 ", want: "1"},
		{name: "non numeric passes through", in: "many", want: "many"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeBidCount(tc.in); got != tc.want {
				t.Fatalf("normalizeBidCount(%q) got %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePriceCell(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty cell falls to sentinel", in: "  ", want: model.PriceUnknown},
		{name: "plain price unchanged", in: "$5.00", want: "$5.00"},
		{name: "digit then dollar amount", in: "5$12.50", want: "5 (Buy-It-Now for $12.50)"},
		{name: "bid price then buy it now price", in: "$5.00$12.50", want: "$5.00 (Buy-It-Now for $12.50)"},
		{name: "canadian dollars", in: "C $4.00C $9.99", want: "C $4.00 (Buy-It-Now for C $9.99)"},
		{name: "pounds", in: "GBP 3.00GBP 10.00", want: "GBP 3.00 (Buy-It-Now for GBP 10.00)"},
		{name: "unrecognized currency passes through", in: "$5.00JPY 600", want: "$5.00JPY 600"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := parsePriceCell(tc.in); got != tc.want {
				t.Fatalf("parsePriceCell(%q) got %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestComposeDescription(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		itemNumber int64
		bidCount   string
		price      string
		want       string
	}{
		{
			name:       "multiple bids",
			itemNumber: 1234567890,
			bidCount:   "3",
			price:      "$5.00",
			want:       "Item #1234567890; 3 bids; current bid $5.00",
		},
		{
			name:       "single bid is not pluralized",
			itemNumber: 1234567890,
			bidCount:   "1",
			price:      "$5.00",
			want:       "Item #1234567890; 1 bid; current bid $5.00",
		},
		{
			name:       "no bids means starting bid",
			itemNumber: 1234567890,
			bidCount:   model.BidCountNone,
			price:      "$2.00",
			want:       "Item #1234567890; no bids; starting bid $2.00",
		},
		{
			name:       "absent item number",
			itemNumber: model.ItemNumberNone,
			bidCount:   "2",
			price:      model.PriceUnknown,
			want:       "Item #unknown; 2 bids; current bid $unknown",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := composeDescription(tc.itemNumber, tc.bidCount, tc.price)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
