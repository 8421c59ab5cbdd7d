package model

// 抽出できなかったフィールドに入る番兵値です
// エラーではなく、これらの値で「取れなかった」ことを表現します
const (
	BidCountNone   = "no"       // 入札なし（空欄やハイフンのみのセル）
	PriceUnknown   = "$unknown" // 価格セルが欠けている場合
	DateUnknown    = "unknown"  // 出品日セルが欠けている場合
	ItemNumberNone = int64(0)   // URLからitem番号を取れなかった場合
)

// Listing は検索結果1行から抽出した出品のドメインモデルです
// 外部サイト（eBay）のHTML構造を知らない、純粋なデータ構造を定義します
// 一度生成されたら変更されません（ページをまたぐ重複排除は呼び出し側の責務）
type Listing struct {
	URL         string // 詳細ページの絶対URL。必ず非空
	Title       string // 出品タイトル（マークアップ除去済み）
	ItemNumber  int64  // URLのitem=クエリから。取れない場合は0
	BidCount    string // 入札数。入札なしは "no"
	Price       string // 通貨記号付きの文字列。即決価格の注記が付く場合あり
	ChangeDate  string // 出品開始日の生テキスト（正規化しない）
	Description string // 番号・入札数・価格を "; " で繋いだ説明文
	RawFragment string // 抽出元のHTML断片（診断用）
}

// SearchResultsPage は検索結果1ページ分の解釈結果です
// 並び順はページの表示順（サイト既定では新着順）をそのまま保持します
type SearchResultsPage struct {
	Listings   []*Listing
	FoundCount int    // このページで抽出できた行数。len(Listings)と一致する
	TotalCount int64  // "N items found" の概算総数。見つからなければ0
	NextURL    string // 次ページの絶対URL。最終ページなら空
}

// SearchQuery は検索条件です。URLへの変換はインフラ層が行います
type SearchQuery struct {
	Keywords     string
	ItemsPerPage int // 0なら既定値
}

// SearchResult は全ページを辿って集約した最終結果です
type SearchResult struct {
	Listings   []*Listing
	TotalCount int64 // 最初に検出された概算総数
	Pages      int   // 実際に解釈したページ数
}
