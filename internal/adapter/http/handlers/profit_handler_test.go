package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gemtrade_backoffice/internal/adapter/http/handlers/mocks"
	"gemtrade_backoffice/internal/domain/entities"
	"gemtrade_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProfitHandler_GetOrderProfitSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitUseCase(ctrl)
		h := NewProfitHandler(uc)

		uc.EXPECT().OrderSummary(gomock.Any(), "order-1").Return(entities.OrderProfitSummary{
			OrderID:              "order-1",
			TotalGrossUSD:        1000,
			TotalNetUSD:          950,
			TotalExpectedINR:     78964,
			TotalExpenses:        4841,
			NetProfit:            74059,
			SellingTotal:         1000,
			ProfitPercent:        7405.9,
			SettledPaymentsCount: 1,
		}, nil)

		r := gin.New()
		r.GET("/v1/orders/:order_id/profit-summary", h.GetOrderProfitSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/profit-summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["order_id"] != "order-1" {
			t.Fatalf("expected order-1, got %v", got["order_id"])
		}
		if got["net_profit"] != 74059.0 {
			t.Fatalf("expected net_profit 74059, got %v", got["net_profit"])
		}
		if got["settled_payments_count"] != 1.0 {
			t.Fatalf("expected settled_payments_count 1, got %v", got["settled_payments_count"])
		}
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitUseCase(ctrl)
		h := NewProfitHandler(uc)

		uc.EXPECT().OrderSummary(gomock.Any(), "ghost").Return(entities.OrderProfitSummary{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.GET("/v1/orders/:order_id/profit-summary", h.GetOrderProfitSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ghost/profit-summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitUseCase(ctrl)
		h := NewProfitHandler(uc)

		uc.EXPECT().OrderSummary(gomock.Any(), "order-1").Return(entities.OrderProfitSummary{}, errors.New("dynamo down"))

		r := gin.New()
		r.GET("/v1/orders/:order_id/profit-summary", h.GetOrderProfitSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/profit-summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestProfitHandler_BulkOrderProfitSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitUseCase(ctrl)
		h := NewProfitHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/profit-summaries", h.BulkOrderProfitSummary)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/profit-summaries", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing order_ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitUseCase(ctrl)
		h := NewProfitHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/profit-summaries", h.BulkOrderProfitSummary)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/profit-summaries", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("summaries keyed by order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitUseCase(ctrl)
		h := NewProfitHandler(uc)

		uc.EXPECT().BulkOrderSummary(gomock.Any(), []string{"order-1", "order-2"}).Return(map[string]entities.OrderPaymentSummary{
			"order-1": {
				OrderID:       "order-1",
				NetProfit:     74059,
				PaymentStatus: entities.OrderPaymentStatePaid,
			},
			"order-2": {
				OrderID:       "order-2",
				NetProfit:     -685,
				PaymentStatus: entities.OrderPaymentStateUnpaid,
			},
		}, nil)

		r := gin.New()
		r.POST("/v1/orders/profit-summaries", h.BulkOrderProfitSummary)

		body := `{"order_ids":["order-1","order-2"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/profit-summaries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var got map[string]map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(got))
		}
		if got["order-1"]["payment_status"] != "Paid" {
			t.Fatalf("expected order-1 Paid, got %v", got["order-1"]["payment_status"])
		}
		if got["order-2"]["payment_status"] != "Unpaid" {
			t.Fatalf("expected order-2 Unpaid, got %v", got["order-2"]["payment_status"])
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfitUseCase(ctrl)
		h := NewProfitHandler(uc)

		uc.EXPECT().BulkOrderSummary(gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamo down"))

		r := gin.New()
		r.POST("/v1/orders/profit-summaries", h.BulkOrderProfitSummary)

		body := `{"order_ids":["order-1"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/profit-summaries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
