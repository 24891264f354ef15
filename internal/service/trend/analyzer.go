package trend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// PriceReader loads daily closes, newest first
type PriceReader interface {
	RecentCloses(ctx context.Context, symbol string, limit int) ([]PricePoint, error)
}

// Analysis 종목 단위 추세 분석 결과
type Analysis struct {
	Symbol  string     `json:"symbol"`
	Windows Windows    `json:"windows"`
	AsOf    *time.Time `json:"as_of"`
	Points  int        `json:"points"`
	Result
}

// Analyzer 가격 이력으로 이동평균을 계산하고 Classify에 위임
type Analyzer struct {
	prices PriceReader
}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer(prices PriceReader) *Analyzer {
	return &Analyzer{prices: prices}
}

// Analyze computes short/long moving averages and the latest close for symbol
// 이력이 부족하면 insufficient_data 결과를 반환 (에러 아님)
func (a *Analyzer) Analyze(ctx context.Context, symbol string, w Windows) (*Analysis, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: short=%d long=%d", err, w.Short, w.Long)
	}

	points, err := a.prices.RecentCloses(ctx, symbol, w.Long)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history for %s: %w", symbol, err)
	}

	var shortAvg, longAvg, current *float64
	if v, ok := MovingAverage(points, w.Short); ok {
		shortAvg = &v
	}
	if v, ok := MovingAverage(points, w.Long); ok {
		longAvg = &v
	}

	analysis := &Analysis{Symbol: symbol, Windows: w, Points: len(points)}
	if len(points) > 0 {
		c := points[0].Close
		current = &c
		asOf := points[0].Date
		analysis.AsOf = &asOf
	}

	result, err := Classify(shortAvg, longAvg, current)
	if err != nil {
		return nil, fmt.Errorf("failed to classify %s: %w", symbol, err)
	}
	analysis.Result = result

	log.Debug().
		Str("symbol", symbol).
		Int("points", len(points)).
		Int("short_window", w.Short).
		Int("long_window", w.Long).
		Str("trend", string(result.Trend)).
		Str("signal", string(result.Signal)).
		Msg("Analyzed trend")

	return analysis, nil
}
