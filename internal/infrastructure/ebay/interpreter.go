package ebay

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"jo3qma.com/ebay_search/internal/domain/model"
)

// Verbosity は診断出力の量を3段階で制御します。
// 呼び出し側から渡され、各コンポーネントのログ出力を一律に絞ります
type Verbosity int

const (
	VerbosityQuiet Verbosity = iota // 警告のみ
	VerbosityTrace                  // 動作の追跡ログ
	VerbosityDump                   // 生マークアップの断片まで出力
)

// Interpreter は検索結果ページ1枚の解釈器です。
// 修復 → ツリー構築 → 件数検出 + 行抽出 → ページネーション解決 の順に実行し、
// レコード群と次ページURL（無ければ空）を返します。
// 呼び出しをまたぐ状態を持たず、渡されたツリーだけを変更します
type Interpreter struct {
	logger    *zap.Logger
	verbosity Verbosity
}

// NewInterpreter は新しいInterpreterを作成します。loggerがnilなら何も出力しません
func NewInterpreter(logger *zap.Logger, verbosity Verbosity) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{logger: logger, verbosity: verbosity}
}

// Interpret は生ページテキストを解釈して1ページ分の結果を返します。
// pageURLは相対リンクを絶対URLへ解決する基準です。
//
// 壊れた行は番兵値への縮退か行単位のスキップで処理し、ページ全体を
// 失敗させることはありません。エラーを返すのは入力がパースできない場合と、
// URL解決が失敗した場合だけで、後者では抽出済みの行も一緒に返します
func (p *Interpreter) Interpret(rawHTML, pageURL string) (*model.SearchResultsPage, error) {
	normalized := NormalizeMarkup(rawHTML)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(normalized))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// 失敗してもbaseはnilになるだけで、行の抽出はそのまま続ける
	base, baseErr := url.Parse(pageURL)

	page := &model.SearchResultsPage{}
	page.TotalCount = p.scanHitCount(doc)
	page.Listings, page.FoundCount = p.extractRows(doc, base)

	if p.verbosity >= VerbosityTrace {
		p.logger.Info("interpreted page",
			zap.String("url", pageURL),
			zap.Int("rows", page.FoundCount),
			zap.Int64("total", page.TotalCount),
		)
	}

	if baseErr != nil {
		return page, fmt.Errorf("invalid page url %q: %w", pageURL, baseErr)
	}

	next, err := p.resolveNextPage(doc, base)
	if err != nil {
		return page, err
	}
	page.NextURL = next
	return page, nil
}

// trace は追跡レベル以上のときだけ動作ログを出します
func (p *Interpreter) trace(msg string, fields ...zap.Field) {
	if p.verbosity >= VerbosityTrace {
		p.logger.Info(msg, fields...)
	}
}
