package ebay

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ページャのラベル。"Next >" または "Next »"（&gt; などの実体参照は
// テキスト抽出の時点で復号済み）
var nextLinkPattern = regexp.MustCompile(`^Next\s*(?:>|»)`)

// resolveNextPage は行を取り除いた後のツリーから次ページのリンクを探し、
// ページのURLを基準に絶対URLへ解決して返します。ページャが無ければ空文字列。
//
// ページャは慣例として文書の末尾近くに描画されるため、リンクを逆順に走査します。
// 逆走査の途中で詳細ページリンクに当たったら、ページャを見つけないまま
// 出品領域まで戻ったことを意味するので、そこで探索を打ち切ります。
// ナビゲーション領域が出品テーブルより前に来るレイアウトに変わった場合、
// この方法は次ページ無しと誤報します（既知の弱点）
func (p *Interpreter) resolveNextPage(doc *goquery.Document, base *url.URL) (string, error) {
	var links []*goquery.Selection
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		links = append(links, a)
	})

	for i := len(links) - 1; i >= 0; i-- {
		href, ok := links[i].Attr("href")
		if !ok {
			continue
		}
		if strings.Contains(href, detailPageMarker) {
			p.trace("pagination scan reached listing area, no next page")
			return "", nil
		}
		if !nextLinkPattern.MatchString(strings.TrimSpace(links[i].Text())) {
			continue
		}

		ref, err := url.Parse(href)
		if err != nil {
			return "", fmt.Errorf("failed to resolve next page link: %w", err)
		}
		next := base.ResolveReference(ref).String()
		p.trace("resolved next page", zap.String("url", next))
		return next, nil
	}
	return "", nil
}
