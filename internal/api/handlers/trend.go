package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wonny/stocklens/internal/api/response"
	"github.com/wonny/stocklens/internal/service/trend"
)

// TrendHandler exposes the classifier on caller-supplied averages
type TrendHandler struct{}

// NewTrendHandler creates a new TrendHandler
func NewTrendHandler() *TrendHandler {
	return &TrendHandler{}
}

// ClassifyRequest 분류 요청 (누락된 값은 insufficient_data)
type ClassifyRequest struct {
	ShortAvg     *float64 `json:"short_avg"`
	LongAvg      *float64 `json:"long_avg"`
	CurrentValue *float64 `json:"current_value"`
}

// Classify handles POST /api/trend/classify
func (h *TrendHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := trend.Classify(req.ShortAvg, req.LongAvg, req.CurrentValue)
	if err != nil {
		if errors.Is(err, trend.ErrCalculation) {
			response.CalculationError(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, result)
}
