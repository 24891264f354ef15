package trend

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Classify 단기/장기 이동평균과 현재가로 추세와 시그널을 분류
//
// 결정 테이블 (위에서부터 첫 번째 일치):
//
//	short>long  value>short  value>long  →  trend    signal
//	true        true         true           bullish  strong_buy
//	true        -            true           bullish  buy
//	true        -            -              bullish  weak_buy
//	false       false        false          bearish  strong_sell
//	false       -            false          bearish  sell
//	false       -            -              bearish  weak_sell
//
// 각 분기가 catch-all 행으로 끝나므로 neutral/hold 기본값은 도달할 수 없다.
func Classify(shortAvg, longAvg, currentValue *float64) (Result, error) {
	if absent(shortAvg) || absent(longAvg) || absent(currentValue) {
		return Result{
			Trend:        TrendUnknown,
			Signal:       SignalInsufficientData,
			ShortAvg:     finite(shortAvg),
			LongAvg:      finite(longAvg),
			CurrentValue: finite(currentValue),
		}, nil
	}

	s, l, v := *shortAvg, *longAvg, *currentValue

	shortAboveLong := s > l
	valueAboveShort := v > s
	valueAboveLong := v > l

	trend, signal := decide(shortAboveLong, valueAboveShort, valueAboveLong)

	shortVsLong, err := percentChange("short_vs_long_percent", s, l)
	if err != nil {
		return Result{}, err
	}
	valueVsShort, err := percentChange("value_vs_short_percent", v, s)
	if err != nil {
		return Result{}, err
	}
	valueVsLong, err := percentChange("value_vs_long_percent", v, l)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Trend:               trend,
		Signal:              signal,
		ShortAvg:            &s,
		LongAvg:             &l,
		CurrentValue:        &v,
		ShortAboveLong:      &shortAboveLong,
		ValueAboveShort:     &valueAboveShort,
		ValueAboveLong:      &valueAboveLong,
		ShortVsLongPercent:  &shortVsLong,
		ValueVsShortPercent: &valueVsShort,
		ValueVsLongPercent:  &valueVsLong,
	}, nil
}

// decide evaluates the decision table
func decide(shortAboveLong, valueAboveShort, valueAboveLong bool) (Trend, Signal) {
	if shortAboveLong {
		switch {
		case valueAboveShort && valueAboveLong:
			return TrendBullish, SignalStrongBuy
		case valueAboveLong:
			return TrendBullish, SignalBuy
		default:
			return TrendBullish, SignalWeakBuy
		}
	}

	switch {
	case !valueAboveShort && !valueAboveLong:
		return TrendBearish, SignalStrongSell
	case !valueAboveLong:
		return TrendBearish, SignalSell
	default:
		return TrendBearish, SignalWeakSell
	}
}

// percentChange returns (value - base) / base * 100 rounded to 2 places
func percentChange(metric string, value, base float64) (float64, error) {
	pct := (value - base) / base * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, fmt.Errorf("%w: %s is not finite (value=%g, base=%g)", ErrCalculation, metric, value, base)
	}

	rounded, _ := decimal.NewFromFloat(pct).Round(2).Float64()
	return rounded, nil
}

// absent treats nil, zero and NaN as missing input
func absent(v *float64) bool {
	return v == nil || *v == 0 || math.IsNaN(*v)
}

// finite drops NaN and ±Inf so the result stays JSON-encodable
func finite(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
