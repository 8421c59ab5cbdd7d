package ebay

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"jo3qma.com/ebay_search/internal/domain/model"
)

// 即決価格を示す通貨マーカー。サイトの形式変更に備えて一箇所に集約します。
// 追加はあっても削除はしないこと（未知の通貨は注記なしで素通しする）
const currencyMarkers = `\$|C \$|EUR |GBP |£`

// 価格セルの末尾が「数字 + 通貨マーカー + 金額」の形なら、その金額は
// 入札額の後ろに連結された即決（Buy-It-Now）価格です
var buyItNowPattern = regexp.MustCompile(`(\d)\s*((?:` + currencyMarkers + `)\s*[0-9][0-9.,]*)$`)

// normalizeBidCount は入札数セルのテキストを正規化します。
// 空白のみ、またはハイフン1つ（&nbsp;等で前後を埋められていてもよい）は
// どちらも入札なしを意味するので番兵値 "no" に揃えます。
// それ以外のテキストはそのまま返します（整数とは限らない点に注意）
func normalizeBidCount(text string) string {
	t := strings.TrimSpace(text)
	if t == "" || t == "-" {
		return model.BidCountNone
	}
	return t
}

// parsePriceCell は価格セルのテキストを番兵値つきの価格文字列にします。
// 即決価格が連結されていれば "(Buy-It-Now for <金額>)" の注記に書き直し、
// 元の入札額と即決価格を1つの文字列で両方持たせます
func parsePriceCell(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return model.PriceUnknown
	}
	return buyItNowPattern.ReplaceAllString(t, "$1 (Buy-It-Now for $2)")
}

// composeDescription は他のフィールドだけから導出できる説明文を組み立てます。
// 形式: Item #<番号>; <入札数> bid<複数形>; <current|starting> bid <価格>
func composeDescription(itemNumber int64, bidCount, price string) string {
	num := model.DateUnknown // 番号が取れなかった場合も汎用の番兵で表示する
	if itemNumber != model.ItemNumberNone {
		num = strconv.FormatInt(itemNumber, 10)
	}

	plural := "s"
	if bidCount == "1" {
		plural = ""
	}

	kind := "current"
	if bidCount == model.BidCountNone {
		kind = "starting"
	}

	return fmt.Sprintf("Item #%s; %s bid%s; %s bid %s", num, bidCount, plural, kind, price)
}
