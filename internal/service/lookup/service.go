package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wonny/stocklens/internal/domain/stock"
	"github.com/wonny/stocklens/internal/pkg/tickers"
	"github.com/wonny/stocklens/internal/service/resolver"
	"github.com/wonny/stocklens/internal/service/trend"
	"golang.org/x/sync/singleflight"
)

// corpusLoadTimeout bounds a shared corpus query independently of any single caller
const corpusLoadTimeout = 10 * time.Second

// Service 종목명 해석과 추세 분석을 요청 단위로 조합
// 코퍼스는 매 요청마다 저장소에서 새로 읽음 (동시 요청은 singleflight로 합침)
type Service struct {
	stocks   stock.Repository
	analyzer *trend.Analyzer
	tickers  *tickers.Table
	resolver *resolver.Resolver[stock.Stock]
	windows  trend.Windows

	sf singleflight.Group
}

// NewService creates a new lookup service
func NewService(stocks stock.Repository, prices trend.PriceReader, table *tickers.Table, windows trend.Windows) *Service {
	return &Service{
		stocks:   stocks,
		analyzer: trend.NewAnalyzer(prices),
		tickers:  table,
		resolver: resolver.New[stock.Stock](log.Logger),
		windows:  windows,
	}
}

// ResolveName resolves a free-text company name (or a known ticker symbol) to a stock
// 매칭 실패 시 stock.ErrStockNotFound
func (s *Service) ResolveName(ctx context.Context, query string, filter stock.CorpusFilter) (*resolver.Match[stock.Stock], error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be blank", resolver.ErrInvalidArgument)
	}

	corpus, err := s.corpus(ctx, filter)
	if err != nil {
		return nil, err
	}

	match, err := s.resolver.Resolve(s.expandTicker(query), corpus)
	if err != nil {
		return nil, err
	}
	// 치환 전 질의를 그대로 돌려줌
	match.Query = strings.TrimSpace(query)
	if !match.Found {
		return nil, fmt.Errorf("%w: no match for %q", stock.ErrStockNotFound, match.Query)
	}

	return &match, nil
}

// Suggest returns up to limit ranked candidates for query
func (s *Service) Suggest(ctx context.Context, query string, limit int, filter stock.CorpusFilter) ([]resolver.Candidate[stock.Stock], error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be blank", resolver.ErrInvalidArgument)
	}

	corpus, err := s.corpus(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.resolver.Suggest(s.expandTicker(query), corpus, limit)
}

// GetStock returns a stock by symbol
func (s *Service) GetStock(ctx context.Context, symbol string) (*stock.Stock, error) {
	if !stock.ValidateSymbol(symbol) {
		return nil, stock.ErrInvalidSymbol
	}
	return s.stocks.GetBySymbol(ctx, symbol)
}

// Trend analyzes the moving-average trend of symbol
// windows == nil uses the configured defaults
func (s *Service) Trend(ctx context.Context, symbol string, windows *trend.Windows) (*trend.Analysis, error) {
	if !stock.ValidateSymbol(symbol) {
		return nil, stock.ErrInvalidSymbol
	}

	w := s.windows
	if windows != nil {
		w = *windows
	}
	return s.analyzer.Analyze(ctx, symbol, w)
}

// Windows returns the configured default windows
func (s *Service) Windows() trend.Windows {
	return s.windows
}

// expandTicker maps a known ticker symbol to its company name
func (s *Service) expandTicker(query string) string {
	if s.tickers == nil {
		return query
	}
	name, ok := s.tickers.Expand(query)
	if ok {
		log.Debug().Str("symbol", query).Str("name", name).Msg("Expanded ticker symbol")
	}
	return name
}

// corpus loads the resolution corpus; concurrent loads for the same filter share one query
func (s *Service) corpus(ctx context.Context, filter stock.CorpusFilter) ([]resolver.Record[stock.Stock], error) {
	if err := filter.Normalize(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("corpus:%t", filter.TradableOnly)
	if filter.Market != nil {
		key += ":" + *filter.Market
	}

	// 공유 로드는 호출자 취소와 분리하고, 각 호출자는 자기 ctx만 기다림
	ch := s.sf.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), corpusLoadTimeout)
		defer cancel()

		stocks, err := s.stocks.ListCorpus(loadCtx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus: %w", err)
		}
		return ToRecords(stocks), nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Debug().Str("key", key).Msg("Shared corpus load")
		}
		return res.Val.([]resolver.Record[stock.Stock]), nil
	}
}
