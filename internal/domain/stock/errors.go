package stock

import "errors"

var (
	// Validation errors
	ErrInvalidSymbol = errors.New("invalid stock symbol format")
	ErrInvalidMarket = errors.New("invalid market value")

	// Data errors
	ErrStockNotFound = errors.New("stock not found")
)
