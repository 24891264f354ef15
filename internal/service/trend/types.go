package trend

import "time"

// Trend 추세 방향
type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendUnknown Trend = "unknown"
)

// Signal 매매 시그널
type Signal string

const (
	SignalStrongBuy        Signal = "strong_buy"
	SignalBuy              Signal = "buy"
	SignalWeakBuy          Signal = "weak_buy"
	SignalStrongSell       Signal = "strong_sell"
	SignalSell             Signal = "sell"
	SignalWeakSell         Signal = "weak_sell"
	SignalInsufficientData Signal = "insufficient_data"
)

// Result 추세 분류 결과
// 입력이 부족하면 불리언과 퍼센트 필드는 nil
type Result struct {
	Trend               Trend    `json:"trend"`
	Signal              Signal   `json:"signal"`
	ShortAvg            *float64 `json:"short_avg"`
	LongAvg             *float64 `json:"long_avg"`
	CurrentValue        *float64 `json:"current_value"`
	ShortAboveLong      *bool    `json:"short_above_long"`
	ValueAboveShort     *bool    `json:"value_above_short"`
	ValueAboveLong      *bool    `json:"value_above_long"`
	ShortVsLongPercent  *float64 `json:"short_vs_long_percent"`
	ValueVsShortPercent *float64 `json:"value_vs_short_percent"`
	ValueVsLongPercent  *float64 `json:"value_vs_long_percent"`
}

// PricePoint 가격 데이터 포인트
type PricePoint struct {
	Date  time.Time
	Close float64 // 종가
}

// Windows 이동평균 기간 (거래일 수)
type Windows struct {
	Short int `json:"short"`
	Long  int `json:"long"`
}

// DefaultWindows 50일/200일 이동평균
var DefaultWindows = Windows{Short: 50, Long: 200}

// Validate checks that both windows are positive and short < long
func (w Windows) Validate() error {
	if w.Short < 1 || w.Long < 1 || w.Short >= w.Long {
		return ErrInvalidWindow
	}
	return nil
}
