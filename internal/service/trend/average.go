package trend

// MovingAverage 단순 이동평균 (points[0]이 가장 최근)
// 데이터가 period보다 적으면 false
func MovingAverage(points []PricePoint, period int) (float64, bool) {
	if period < 1 || len(points) < period {
		return 0, false
	}

	var sum float64
	for i := 0; i < period; i++ {
		sum += points[i].Close
	}
	return sum / float64(period), true
}
