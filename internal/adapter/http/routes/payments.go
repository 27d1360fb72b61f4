package routes

import (
	"gemtrade_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathOrders   = "/orders"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/:id", paymentHandler.GetPaymentByID)
		payments.PATCH("/:id", paymentHandler.UpdatePayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, profitHandler *handlers.ProfitHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/profit-summaries", profitHandler.BulkOrderProfitSummary)
		orders.GET("/:order_id/payments", paymentHandler.ListPaymentsByOrderID)
		orders.GET("/:order_id/profit-summary", profitHandler.GetOrderProfitSummary)
	}
}
