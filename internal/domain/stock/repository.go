package stock

import "context"

// Repository defines the interface for stock data access
type Repository interface {
	// ListCorpus returns stocks ordered by symbol
	ListCorpus(ctx context.Context, filter CorpusFilter) ([]Stock, error)

	// GetBySymbol returns a stock by symbol
	GetBySymbol(ctx context.Context, symbol string) (*Stock, error)
}
