package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wonny/stocklens/internal/domain/stock"
)

// StockRepository implements stock.Repository using PostgreSQL
type StockRepository struct {
	pool *Pool
}

// NewStockRepository creates a new StockRepository
func NewStockRepository(pool *Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

const stockColumns = `symbol, name, market, sector, industry, market_cap, is_tradable`

// ListCorpus returns active stocks ordered by symbol
// 정렬 순서가 이름 매칭의 동점 처리 기준이 되므로 항상 symbol 오름차순
func (r *StockRepository) ListCorpus(ctx context.Context, filter stock.CorpusFilter) ([]stock.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM market.stocks
		WHERE status = 'ACTIVE'
		  AND ($1::text IS NULL OR market = $1)
		  AND (NOT $2::boolean OR is_tradable)
		ORDER BY symbol ASC
	`

	rows, err := r.pool.Query(ctx, query, filter.Market, filter.TradableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocks: %w", err)
	}
	defer rows.Close()

	stocks := []stock.Stock{}
	for rows.Next() {
		var s stock.Stock
		if err := rows.Scan(
			&s.Symbol, &s.Name, &s.Market, &s.Sector, &s.Industry, &s.MarketCap, &s.IsTradable,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		stocks = append(stocks, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stocks: %w", err)
	}

	return stocks, nil
}

// GetBySymbol returns a stock by symbol
func (r *StockRepository) GetBySymbol(ctx context.Context, symbol string) (*stock.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM market.stocks
		WHERE symbol = $1
	`

	var s stock.Stock
	err := r.pool.QueryRow(ctx, query, symbol).Scan(
		&s.Symbol, &s.Name, &s.Market, &s.Sector, &s.Industry, &s.MarketCap, &s.IsTradable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stock.ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}

	return &s, nil
}
