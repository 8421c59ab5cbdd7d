package ebay

import "regexp"

// 検索結果ページの既知の欠陥: テーブルセルを閉じる直前に </font> が
// 重複して出力されることがあり、そのままではツリー構築が壊れます。
// </font> の連続を1つに畳み込んで整形済みの形にします
var redundantFontClose = regexp.MustCompile(`(?:</font>)+</td>`)

// NormalizeMarkup はツリー構築前の生ページテキストを修復します。
// 純粋な変換で、2回適用しても1回と同じ結果になります（冪等）
func NormalizeMarkup(raw string) string {
	return redundantFontClose.ReplaceAllString(raw, "</font></td>")
}
