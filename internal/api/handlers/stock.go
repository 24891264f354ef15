package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wonny/stocklens/internal/api/response"
	"github.com/wonny/stocklens/internal/domain/stock"
	"github.com/wonny/stocklens/internal/service/resolver"
	"github.com/wonny/stocklens/internal/service/trend"
)

// LookupService is the subset of lookup.Service used by StockHandler
type LookupService interface {
	ResolveName(ctx context.Context, query string, filter stock.CorpusFilter) (*resolver.Match[stock.Stock], error)
	Suggest(ctx context.Context, query string, limit int, filter stock.CorpusFilter) ([]resolver.Candidate[stock.Stock], error)
	GetStock(ctx context.Context, symbol string) (*stock.Stock, error)
	Trend(ctx context.Context, symbol string, windows *trend.Windows) (*trend.Analysis, error)
	Windows() trend.Windows
}

// StockHandler handles stock-related HTTP requests
type StockHandler struct {
	svc LookupService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(svc LookupService) *StockHandler {
	return &StockHandler{svc: svc}
}

// Resolve handles GET /api/stocks/resolve?q=&market=&tradable=
func (h *StockHandler) Resolve(c *gin.Context) {
	match, err := h.svc.ResolveName(c.Request.Context(), c.Query("q"), corpusFilter(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, match)
}

// Suggest handles GET /api/stocks/suggest?q=&limit=
func (h *StockHandler) Suggest(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		l, err := strconv.Atoi(s)
		if err != nil || l < 1 {
			response.BadRequest(c, "Invalid limit", "limit must be a positive integer")
			return
		}
		limit = min(l, 50)
	}

	candidates, err := h.svc.Suggest(c.Request.Context(), c.Query("q"), limit, corpusFilter(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessList(c, candidates, len(candidates))
}

// GetBySymbol handles GET /api/stocks/:symbol
func (h *StockHandler) GetBySymbol(c *gin.Context) {
	s, err := h.svc.GetStock(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, s)
}

// Trend handles GET /api/stocks/:symbol/trend?short=&long=
func (h *StockHandler) Trend(c *gin.Context) {
	var windows *trend.Windows
	if c.Query("short") != "" || c.Query("long") != "" {
		w := h.svc.Windows()
		var err error
		if w.Short, err = queryInt(c, "short", w.Short); err != nil {
			response.BadRequest(c, "Invalid short window", err.Error())
			return
		}
		if w.Long, err = queryInt(c, "long", w.Long); err != nil {
			response.BadRequest(c, "Invalid long window", err.Error())
			return
		}
		windows = &w
	}

	analysis, err := h.svc.Trend(c.Request.Context(), c.Param("symbol"), windows)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, analysis)
}

// writeError maps domain errors onto HTTP responses
func (h *StockHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resolver.ErrInvalidArgument):
		response.BadRequest(c, "Invalid query", "q must not be blank")
	case errors.Is(err, stock.ErrInvalidSymbol):
		response.BadRequest(c, "Invalid symbol format", "Symbol must be 6-digit number")
	case errors.Is(err, stock.ErrInvalidMarket):
		response.BadRequest(c, "Invalid market value", "market must be one of: KOSPI, KOSDAQ, KONEX, ETF")
	case errors.Is(err, trend.ErrInvalidWindow):
		response.BadRequest(c, "Invalid moving average window", err.Error())
	case errors.Is(err, stock.ErrStockNotFound):
		response.NotFound(c, "Stock not found", err.Error())
	case errors.Is(err, trend.ErrCalculation):
		response.CalculationError(c, err)
	default:
		response.DatabaseError(c, err)
	}
}

func corpusFilter(c *gin.Context) stock.CorpusFilter {
	filter := stock.CorpusFilter{TradableOnly: c.DefaultQuery("tradable", "true") != "false"}
	if market := c.Query("market"); market != "" {
		filter.Market = &market
	}
	return filter
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}
