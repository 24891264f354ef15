package stock

import "strings"

// Stock represents a listed stock
// Maps to market.stocks table
type Stock struct {
	Symbol     string  `json:"symbol" db:"symbol"`           // 종목 코드 (6자리 숫자)
	Name       string  `json:"name" db:"name"`               // 종목명
	Market     string  `json:"market" db:"market"`           // KOSPI | KOSDAQ | KONEX | ETF
	Sector     *string `json:"sector" db:"sector"`           // 섹터
	Industry   *string `json:"industry" db:"industry"`       // 업종
	MarketCap  *int64  `json:"market_cap" db:"market_cap"`   // 시가총액 (원)
	IsTradable bool    `json:"is_tradable" db:"is_tradable"` // 거래 가능 여부
}

// CorpusFilter narrows the set of stocks loaded for name resolution
type CorpusFilter struct {
	Market       *string // KOSPI, KOSDAQ, KONEX, ETF, nil (all)
	TradableOnly bool
}

// ValidateSymbol validates stock symbol format (6-digit number)
func ValidateSymbol(symbol string) bool {
	if len(symbol) != 6 {
		return false
	}
	for _, c := range symbol {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ValidateMarket validates market value
func ValidateMarket(market string) bool {
	return market == "KOSPI" || market == "KOSDAQ" || market == "KONEX" || market == "ETF"
}

// Normalize upper-cases and validates the market filter
func (f *CorpusFilter) Normalize() error {
	if f.Market == nil {
		return nil
	}
	m := strings.ToUpper(strings.TrimSpace(*f.Market))
	if !ValidateMarket(m) {
		return ErrInvalidMarket
	}
	f.Market = &m
	return nil
}
