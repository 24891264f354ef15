package postgres

import (
	"context"
	"fmt"

	"github.com/wonny/stocklens/internal/service/trend"
)

// PriceRepository reads daily closes from data.daily_prices
type PriceRepository struct {
	pool *Pool
}

// NewPriceRepository creates a new PriceRepository
func NewPriceRepository(pool *Pool) *PriceRepository {
	return &PriceRepository{pool: pool}
}

// RecentCloses returns up to limit closes for symbol, newest first
func (r *PriceRepository) RecentCloses(ctx context.Context, symbol string, limit int) ([]trend.PricePoint, error) {
	query := `
		SELECT trade_date, close_price
		FROM data.daily_prices
		WHERE stock_code = $1
		  AND close_price IS NOT NULL
		ORDER BY trade_date DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily prices: %w", err)
	}
	defer rows.Close()

	points := make([]trend.PricePoint, 0, limit)
	for rows.Next() {
		var p trend.PricePoint
		if err := rows.Scan(&p.Date, &p.Close); err != nil {
			return nil, fmt.Errorf("failed to scan daily price: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily prices: %w", err)
	}

	return points, nil
}
