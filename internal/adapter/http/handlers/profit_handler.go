package handlers

import (
	request "gemtrade_backoffice/internal/adapter/http/dto/request"
	response "gemtrade_backoffice/internal/adapter/http/dto/response"
	"gemtrade_backoffice/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProfitHandler handles HTTP requests for order profitability reports.

type ProfitHandler struct {
	usecase usecase.IProfitUseCase
}

func NewProfitHandler(uc usecase.IProfitUseCase) *ProfitHandler {
	return &ProfitHandler{usecase: uc}
}

// GetOrderProfitSummary returns the full profitability breakdown for one order.
func (h *ProfitHandler) GetOrderProfitSummary(c *gin.Context) {
	orderID := c.Param("order_id")

	summary, err := h.usecase.OrderSummary(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderProfitSummary(summary))
}

// BulkOrderProfitSummary computes profit and payment status for a batch of
// orders in one shot. Unknown order ids are silently dropped from the result.
func (h *ProfitHandler) BulkOrderProfitSummary(c *gin.Context) {
	var payload request.BulkProfitSummaryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	summaries, err := h.usecase.BulkOrderSummary(c.Request.Context(), payload.OrderIDs)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPaymentSummaries(summaries))
}
