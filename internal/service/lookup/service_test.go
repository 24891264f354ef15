package lookup

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wonny/stocklens/internal/domain/stock"
	"github.com/wonny/stocklens/internal/pkg/tickers"
	"github.com/wonny/stocklens/internal/service/resolver"
	"github.com/wonny/stocklens/internal/service/trend"
)

type fakeStocks struct {
	stocks  []stock.Stock
	err     error
	calls   atomic.Int32
	delay   time.Duration
	filters []stock.CorpusFilter
	mu      sync.Mutex
}

func (f *fakeStocks) ListCorpus(ctx context.Context, filter stock.CorpusFilter) ([]stock.Stock, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.stocks, nil
}

func (f *fakeStocks) GetBySymbol(ctx context.Context, symbol string) (*stock.Stock, error) {
	for _, s := range f.stocks {
		if s.Symbol == symbol {
			s := s
			return &s, nil
		}
	}
	return nil, stock.ErrStockNotFound
}

type fakePrices struct {
	points []trend.PricePoint
}

func (f *fakePrices) RecentCloses(ctx context.Context, symbol string, limit int) ([]trend.PricePoint, error) {
	if len(f.points) > limit {
		return f.points[:limit], nil
	}
	return f.points, nil
}

func newTestService(t *testing.T, repo *fakeStocks, prices *fakePrices) *Service {
	t.Helper()
	table, err := tickers.New([]tickers.Entry{
		{Symbol: "005930", Name: "삼성전자"},
		{Symbol: "TSLA", Name: "Tesla Inc"},
	})
	require.NoError(t, err)
	return NewService(repo, prices, table, trend.Windows{Short: 2, Long: 3})
}

func sampleStocks() []stock.Stock {
	return []stock.Stock{
		{Symbol: "000660", Name: "SK하이닉스", Market: "KOSPI", IsTradable: true},
		{Symbol: "005930", Name: "삼성전자", Market: "KOSPI", IsTradable: true},
		{Symbol: "006400", Name: "삼성SDI", Market: "KOSPI", IsTradable: true},
		{Symbol: "900001", Name: "Tesla Inc", Market: "ETF", IsTradable: true},
	}
}

func TestResolveName(t *testing.T) {
	svc := newTestService(t, &fakeStocks{stocks: sampleStocks()}, &fakePrices{})
	ctx := context.Background()

	t.Run("exact", func(t *testing.T) {
		m, err := svc.ResolveName(ctx, "삼성전자", stock.CorpusFilter{})
		require.NoError(t, err)
		assert.Equal(t, resolver.StageExact, m.Stage)
		assert.Equal(t, "005930", m.Record.Payload.Symbol)
	})

	t.Run("substring picks first by corpus order", func(t *testing.T) {
		m, err := svc.ResolveName(ctx, "삼성", stock.CorpusFilter{})
		require.NoError(t, err)
		assert.Equal(t, resolver.StageSubstring, m.Stage)
		assert.Equal(t, "005930", m.Record.Payload.Symbol)
	})

	t.Run("ticker symbol expands to name", func(t *testing.T) {
		m, err := svc.ResolveName(ctx, " tsla ", stock.CorpusFilter{})
		require.NoError(t, err)
		assert.Equal(t, resolver.StageExact, m.Stage)
		assert.Equal(t, "900001", m.Record.Payload.Symbol)
		assert.Equal(t, "tsla", m.Query)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := svc.ResolveName(ctx, "zzzzzzzz", stock.CorpusFilter{})
		assert.ErrorIs(t, err, stock.ErrStockNotFound)
	})

	t.Run("blank query", func(t *testing.T) {
		_, err := svc.ResolveName(ctx, "  ", stock.CorpusFilter{})
		assert.ErrorIs(t, err, resolver.ErrInvalidArgument)
	})

	t.Run("invalid market", func(t *testing.T) {
		m := "NYSE"
		_, err := svc.ResolveName(ctx, "삼성", stock.CorpusFilter{Market: &m})
		assert.ErrorIs(t, err, stock.ErrInvalidMarket)
	})
}

func TestResolveName_RepositoryError(t *testing.T) {
	boom := errors.New("db down")
	svc := newTestService(t, &fakeStocks{err: boom}, &fakePrices{})

	_, err := svc.ResolveName(context.Background(), "삼성", stock.CorpusFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestResolveName_CoalescesCorpusLoads(t *testing.T) {
	repo := &fakeStocks{stocks: sampleStocks(), delay: 50 * time.Millisecond}
	svc := newTestService(t, repo, &fakePrices{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ResolveName(context.Background(), "삼성전자", stock.CorpusFilter{TradableOnly: true})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Less(t, int(repo.calls.Load()), 8)
}

// gatedStocks blocks ListCorpus until released or its ctx is done
type gatedStocks struct {
	fakeStocks
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStocks) ListCorpus(ctx context.Context, filter stock.CorpusFilter) ([]stock.Stock, error) {
	g.calls.Add(1)
	close(g.entered)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-g.release:
		return g.stocks, nil
	}
}

func TestResolveName_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	repo := &gatedStocks{
		fakeStocks: fakeStocks{stocks: sampleStocks()},
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	svc := newTestService(t, &repo.fakeStocks, &fakePrices{})
	svc.stocks = repo

	filter := stock.CorpusFilter{TradableOnly: true}
	ctxA, cancelA := context.WithCancel(context.Background())

	errA := make(chan error, 1)
	go func() {
		_, err := svc.ResolveName(ctxA, "삼성전자", filter)
		errA <- err
	}()
	<-repo.entered

	type outcome struct {
		m   *resolver.Match[stock.Stock]
		err error
	}
	resB := make(chan outcome, 1)
	go func() {
		m, err := svc.ResolveName(context.Background(), "삼성전자", filter)
		resB <- outcome{m, err}
	}()
	// B가 진행 중인 로드에 합류할 시간
	time.Sleep(20 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(repo.release)
	b := <-resB
	require.NoError(t, b.err)
	assert.Equal(t, "005930", b.m.Record.Payload.Symbol)
	assert.Equal(t, int32(1), repo.calls.Load())
}

func TestSuggest(t *testing.T) {
	svc := newTestService(t, &fakeStocks{stocks: sampleStocks()}, &fakePrices{})

	got, err := svc.Suggest(context.Background(), "삼성전기", 2, stock.CorpusFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "005930", got[0].Record.Payload.Symbol)
}

func TestTrend(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	prices := &fakePrices{points: []trend.PricePoint{
		{Date: start.AddDate(0, 0, 2), Close: 90},
		{Date: start.AddDate(0, 0, 1), Close: 100},
		{Date: start, Close: 110},
	}}
	svc := newTestService(t, &fakeStocks{stocks: sampleStocks()}, prices)

	got, err := svc.Trend(context.Background(), "005930", nil)
	require.NoError(t, err)
	// short=95, long=100, current=90
	assert.Equal(t, trend.TrendBearish, got.Trend)
	assert.Equal(t, trend.SignalStrongSell, got.Signal)
	assert.Equal(t, trend.Windows{Short: 2, Long: 3}, got.Windows)

	_, err = svc.Trend(context.Background(), "ABC", nil)
	assert.ErrorIs(t, err, stock.ErrInvalidSymbol)

	_, err = svc.Trend(context.Background(), "005930", &trend.Windows{Short: 3, Long: 2})
	assert.ErrorIs(t, err, trend.ErrInvalidWindow)
}

func TestGetStock(t *testing.T) {
	svc := newTestService(t, &fakeStocks{stocks: sampleStocks()}, &fakePrices{})

	s, err := svc.GetStock(context.Background(), "000660")
	require.NoError(t, err)
	assert.Equal(t, "SK하이닉스", s.Name)

	_, err = svc.GetStock(context.Background(), "999999")
	assert.ErrorIs(t, err, stock.ErrStockNotFound)
}

func TestTickerRecords(t *testing.T) {
	table, err := tickers.Default()
	require.NoError(t, err)

	records := TickerRecords(table)
	require.Len(t, records, table.Len())

	m, err := resolver.Resolve("삼성전자", records)
	require.NoError(t, err)
	assert.Equal(t, "005930", m.Record.Payload.Symbol)
}
