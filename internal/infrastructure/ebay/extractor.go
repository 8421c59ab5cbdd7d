package ebay

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"jo3qma.com/ebay_search/internal/domain/model"
)

// 検索結果ページの構造を見分けるための目印。
// サイト改修で形式が変わった場合の修正点をここに集約します
const (
	// detailPageMarker は詳細ページURLを示す部分文字列です。
	// 内容セルの発見と、ページネーション走査での出品領域検出の両方に使います
	detailPageMarker = "ViewItem"

	// 装飾セルの特徴。サムネイルのホストは2系統が知られています
	thumbHostPattern1 = "thumbs.ebay.com"
	thumbHostPattern2 = "thumbs.ebaystatic.com"
	noPictureImage    = "pics.ebay.com/aw/pics/nopicture.gif"
	buyItNowBadge     = "pics.ebay.com/aw/pics/buyitnow"

	// タイトルリンクや件数表示を含む、テキストを持つ強調要素
	emphasisElements = "b, strong, font"
)

var (
	// "1,234 items found" 形式の概算総数表示
	hitCountPattern = regexp.MustCompile(`([0-9][0-9,]*)\s+items found`)

	// 詳細ページURLの item= クエリトークン
	itemNumberPattern = regexp.MustCompile(`[?&]item=([0-9]+)`)
)

// scanHitCount は強調要素を文書順に走査し、最初に見つかった
// "N items found" の整数を概算総数として返します。見つからなければ0。
// 最初の一致で打ち切り、以降の出現は無視します
func (p *Interpreter) scanHitCount(doc *goquery.Document) int64 {
	var total int64
	doc.Find(emphasisElements).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		m := hitCountPattern.FindStringSubmatch(s.Text())
		if m == nil {
			return true
		}
		total, _ = strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
		return false
	})
	return total
}

// isCandidateCell は直列化したセルのマークアップから出品行の候補かを判定します。
// 内容セルを示す正の構造タグが存在しないため、詳細ページリンクを含みつつ
// 装飾（サムネイル・プレースホルダ画像・即決バッジ）を含まないことを
// 消去法で確かめるしかありません
func isCandidateCell(markup string) bool {
	if !strings.Contains(markup, detailPageMarker) {
		return false
	}
	for _, decoration := range []string{thumbHostPattern1, thumbHostPattern2, noPictureImage, buyItNowBadge} {
		if strings.Contains(markup, decoration) {
			return false
		}
	}
	return true
}

// extractRows は文書から出品レコードを順に抽出します。
// 副作用として消費済みの行をツリーから取り除き、同じツリーを再度調べても
// 同じ行を二重に拾わないようにします。走査中のツリー変更を避けるため、
// 候補一覧を先に確定してから取り除きます。
// 戻り値の件数は抽出できたレコード数と常に一致します
func (p *Interpreter) extractRows(doc *goquery.Document, base *url.URL) ([]*model.Listing, int) {
	var candidates []*goquery.Selection
	doc.Find("td").Each(func(_ int, td *goquery.Selection) {
		markup, err := goquery.OuterHtml(td)
		if err != nil {
			return
		}
		if isCandidateCell(markup) {
			candidates = append(candidates, td)
		}
	})

	var listings []*model.Listing
	for _, td := range candidates {
		listing := p.extractListing(td, base)
		if listing == nil {
			continue
		}
		listings = append(listings, listing)

		// 候補セルを含む行ごと取り除く。値セルも一緒に消費済みになる
		if row := td.Closest("tr"); row.Length() > 0 {
			row.Remove()
		} else {
			td.Remove()
		}
	}
	return listings, len(listings)
}

// extractListing は候補セル1つからレコードを組み立てます。
// 必須の下位要素が欠けている場合は行ごとスキップし（nilを返す）、
// 任意フィールドの欠落は番兵値で埋めます。ページ全体を失敗させることはありません
func (p *Interpreter) extractListing(td *goquery.Selection, base *url.URL) *model.Listing {
	fragment, _ := goquery.OuterHtml(td)
	if p.verbosity >= VerbosityDump {
		p.logger.Debug("candidate cell", zap.String("fragment", fragment))
	}

	// タイトルリンクは最初の強調要素の中にある
	em := td.Find(emphasisElements).First()
	if em.Length() == 0 {
		p.trace("skipping candidate: no emphasis element")
		return nil
	}
	link := em.Find("a").First()
	if link.Length() == 0 {
		p.trace("skipping candidate: no link in emphasis element")
		return nil
	}
	href, ok := link.Attr("href")
	if !ok || !strings.Contains(href, detailPageMarker) {
		p.trace("skipping candidate: link is not a detail page", zap.String("href", href))
		return nil
	}

	absURL := href
	if base != nil {
		if ref, err := url.Parse(href); err == nil {
			absURL = base.ResolveReference(ref).String()
		}
	}
	if absURL == "" {
		return nil
	}

	itemNumber := model.ItemNumberNone
	if m := itemNumberPattern.FindStringSubmatch(href); m != nil {
		itemNumber, _ = strconv.ParseInt(m[1], 10, 64)
	}

	// 値は位置で符号化されている: 直後の兄弟セルが順に価格、入札数、
	// そして残りの末尾が出品日。欠けたスロットは番兵値のままにする
	cells := td.NextAll().Filter("td")
	price := model.PriceUnknown
	bids := model.BidCountNone
	date := model.DateUnknown
	n := cells.Length()
	if n > 0 {
		price = parsePriceCell(cells.Eq(0).Text())
	}
	if n > 1 {
		bids = normalizeBidCount(cells.Eq(1).Text())
	}
	if n > 2 {
		date = strings.TrimSpace(cells.Eq(n - 1).Text())
	}

	listing := &model.Listing{
		URL:         absURL,
		Title:       strings.TrimSpace(link.Text()),
		ItemNumber:  itemNumber,
		BidCount:    bids,
		Price:       price,
		ChangeDate:  date,
		Description: composeDescription(itemNumber, bids, price),
		RawFragment: fragment,
	}
	p.trace("extracted listing", zap.String("url", listing.URL), zap.Int64("item", itemNumber))
	return listing
}
