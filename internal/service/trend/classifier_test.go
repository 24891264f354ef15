package trend

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestClassify_StrongBuy(t *testing.T) {
	r, err := Classify(f(2450.50), f(2300.25), f(2500.00))
	require.NoError(t, err)

	assert.Equal(t, TrendBullish, r.Trend)
	assert.Equal(t, SignalStrongBuy, r.Signal)
	assert.True(t, *r.ShortAboveLong)
	assert.True(t, *r.ValueAboveShort)
	assert.True(t, *r.ValueAboveLong)
	assert.Equal(t, 6.53, *r.ShortVsLongPercent)
	assert.Equal(t, 2.02, *r.ValueVsShortPercent)
	assert.Equal(t, 8.68, *r.ValueVsLongPercent)
	assert.Equal(t, 2450.50, *r.ShortAvg)
}

func TestClassify_StrongSell(t *testing.T) {
	r, err := Classify(f(2000), f(2300), f(1900))
	require.NoError(t, err)

	assert.Equal(t, TrendBearish, r.Trend)
	assert.Equal(t, SignalStrongSell, r.Signal)
	assert.False(t, *r.ShortAboveLong)
	assert.False(t, *r.ValueAboveShort)
	assert.False(t, *r.ValueAboveLong)
	assert.Equal(t, -13.04, *r.ShortVsLongPercent)
	assert.Equal(t, -5.0, *r.ValueVsShortPercent)
	assert.Equal(t, -17.39, *r.ValueVsLongPercent)
}

func TestClassify_DecisionTable(t *testing.T) {
	tests := []struct {
		name                 string
		short, long, current float64
		wantTrend            Trend
		wantSignal           Signal
	}{
		{"value above both", 110, 100, 120, TrendBullish, SignalStrongBuy},
		// value between long and short: only value>long holds
		{"value between averages", 110, 100, 105, TrendBullish, SignalBuy},
		{"value below both in uptrend", 110, 100, 90, TrendBullish, SignalWeakBuy},
		{"value equal short in uptrend", 110, 100, 110, TrendBullish, SignalBuy},
		{"value below both", 90, 100, 80, TrendBearish, SignalStrongSell},
		// value between short and long: value>short only
		{"value between averages in downtrend", 90, 100, 95, TrendBearish, SignalSell},
		{"value above both in downtrend", 90, 100, 120, TrendBearish, SignalWeakSell},
		{"equal averages count as not above", 100, 100, 90, TrendBearish, SignalStrongSell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Classify(f(tt.short), f(tt.long), f(tt.current))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTrend, r.Trend)
			assert.Equal(t, tt.wantSignal, r.Signal)
		})
	}
}

func TestDecide_Exhaustive(t *testing.T) {
	for _, sl := range []bool{true, false} {
		for _, vs := range []bool{true, false} {
			for _, vl := range []bool{true, false} {
				trend, signal := decide(sl, vs, vl)
				assert.NotEqual(t, TrendUnknown, trend)
				assert.NotEmpty(t, signal)
				if sl {
					assert.Equal(t, TrendBullish, trend)
				} else {
					assert.Equal(t, TrendBearish, trend)
				}
			}
		}
	}
}

func TestClassify_InsufficientData(t *testing.T) {
	tests := []struct {
		name                 string
		short, long, current *float64
	}{
		{"missing short", nil, f(2300), f(2500)},
		{"missing long", f(2300), nil, f(2500)},
		{"missing current", f(2300), f(2200), nil},
		{"zero short", f(0), f(2300), f(2500)},
		{"zero current", f(2300), f(2200), f(0)},
		{"NaN long", f(2300), f(math.NaN()), f(2500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Classify(tt.short, tt.long, tt.current)
			require.NoError(t, err)
			assert.Equal(t, TrendUnknown, r.Trend)
			assert.Equal(t, SignalInsufficientData, r.Signal)
			assert.Nil(t, r.ShortAboveLong)
			assert.Nil(t, r.ValueAboveShort)
			assert.Nil(t, r.ValueAboveLong)
			assert.Nil(t, r.ShortVsLongPercent)
			assert.Nil(t, r.ValueVsShortPercent)
			assert.Nil(t, r.ValueVsLongPercent)
		})
	}
}

func TestClassify_InsufficientDataDropsNaN(t *testing.T) {
	r, err := Classify(f(2300), f(math.NaN()), f(2500))
	require.NoError(t, err)
	assert.Nil(t, r.LongAvg)
	assert.Equal(t, 2300.0, *r.ShortAvg)

	_, err = json.Marshal(r)
	assert.NoError(t, err)

	t.Run("infinite input", func(t *testing.T) {
		r, err := Classify(f(math.Inf(1)), nil, f(1))
		require.NoError(t, err)
		assert.Equal(t, SignalInsufficientData, r.Signal)
		assert.Nil(t, r.ShortAvg)
		assert.Equal(t, 1.0, *r.CurrentValue)

		_, err = json.Marshal(r)
		assert.NoError(t, err)
	})

	t.Run("negative infinite input", func(t *testing.T) {
		r, err := Classify(f(100), f(math.Inf(-1)), nil)
		require.NoError(t, err)
		assert.Nil(t, r.LongAvg)

		_, err = json.Marshal(r)
		assert.NoError(t, err)
	})
}

func TestClassify_NonFinitePercent(t *testing.T) {
	tiny := math.SmallestNonzeroFloat64

	_, err := Classify(f(tiny), f(tiny), f(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCalculation))
	assert.Contains(t, err.Error(), "value_vs_short_percent")
}

func TestClassify_Idempotent(t *testing.T) {
	a, err := Classify(f(2450.50), f(2300.25), f(2500.00))
	require.NoError(t, err)
	b, err := Classify(f(2450.50), f(2300.25), f(2500.00))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResult_JSON(t *testing.T) {
	r, err := Classify(nil, f(2300), f(2500))
	require.NoError(t, err)

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "unknown", decoded["trend"])
	assert.Equal(t, "insufficient_data", decoded["signal"])
	assert.Nil(t, decoded["short_above_long"])
	assert.Nil(t, decoded["short_vs_long_percent"])
	assert.Contains(t, decoded, "value_vs_long_percent")
}

func TestPercentChange_RoundsHalfAwayFromZero(t *testing.T) {
	// (801-800)/800*100 = 0.125 exactly in float64
	up, err := percentChange("m", 801, 800)
	require.NoError(t, err)
	assert.Equal(t, 0.13, up)

	down, err := percentChange("m", 799, 800)
	require.NoError(t, err)
	assert.Equal(t, -0.13, down)
}
