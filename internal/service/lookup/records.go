package lookup

import (
	"github.com/wonny/stocklens/internal/domain/stock"
	"github.com/wonny/stocklens/internal/pkg/tickers"
	"github.com/wonny/stocklens/internal/service/resolver"
)

// ToRecords turns stocks into a resolver corpus keyed by name, preserving order
func ToRecords(stocks []stock.Stock) []resolver.Record[stock.Stock] {
	records := make([]resolver.Record[stock.Stock], len(stocks))
	for i, st := range stocks {
		records[i] = resolver.Record[stock.Stock]{Name: st.Name, Payload: st}
	}
	return records
}

// TickerRecords turns the ticker table into a corpus ordered by symbol
func TickerRecords(table *tickers.Table) []resolver.Record[tickers.Entry] {
	entries := table.Entries()
	records := make([]resolver.Record[tickers.Entry], len(entries))
	for i, e := range entries {
		records[i] = resolver.Record[tickers.Entry]{Name: e.Name, Payload: e}
	}
	return records
}
