package handlers

import (
	"errors"
	request "gemtrade_backoffice/internal/adapter/http/dto/request"
	response "gemtrade_backoffice/internal/adapter/http/dto/response"
	"gemtrade_backoffice/internal/domain/entities"
	"gemtrade_backoffice/internal/usecase"
	"gemtrade_backoffice/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for order payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment records a new payment against an order and returns it with
// all derived amounts filled in.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreatePaymentInput{
		OrderID:                  payload.OrderID,
		MediatorID:               payload.MediatorID,
		BankID:                   payload.BankID,
		ProductIndex:             payload.ProductIndex,
		GrossAmountUSD:           payload.GrossAmountUSD,
		MediatorCommissionType:   commissionTypePtr(payload.MediatorCommissionType),
		MediatorCommissionValue:  payload.MediatorCommissionValue,
		MediatorCommissionAmount: payload.MediatorCommissionAmount,
		ConversionRate:           payload.ConversionRate,
		ActualBankCreditINR:      payload.ActualBankCreditINR,
		PaymentStatus:            entities.PaymentStatus(payload.PaymentStatus),
		Notes:                    payload.Notes,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPaymentByID returns a single payment by its id.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")

	payment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// UpdatePayment applies a partial patch and recomputes derived amounts.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, usecase.UpdatePaymentInput{
		MediatorID:               payload.MediatorID,
		BankID:                   payload.BankID,
		ProductIndex:             payload.ProductIndex,
		GrossAmountUSD:           payload.GrossAmountUSD,
		MediatorCommissionType:   commissionTypePtr(payload.MediatorCommissionType),
		MediatorCommissionValue:  payload.MediatorCommissionValue,
		MediatorCommissionAmount: payload.MediatorCommissionAmount,
		ConversionRate:           payload.ConversionRate,
		ActualBankCreditINR:      payload.ActualBankCreditINR,
		PaymentStatus:            paymentStatusPtr(payload.PaymentStatus),
		Notes:                    payload.Notes,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(updated))
}

// DeletePayment soft-deletes a payment so it stops counting toward its
// order's totals.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPaymentsByOrderID returns the live payments recorded for an order.
func (h *PaymentHandler) ListPaymentsByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func commissionTypePtr(s *string) *entities.CommissionType {
	if s == nil {
		return nil
	}
	ct := entities.CommissionType(*s)
	return &ct
}

func paymentStatusPtr(s *string) *entities.PaymentStatus {
	if s == nil {
		return nil
	}
	ps := entities.PaymentStatus(*s)
	return &ps
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidMediatorID),
		errors.Is(err, usecase.ErrInvalidGrossAmount),
		errors.Is(err, usecase.ErrInvalidConversionRate),
		errors.Is(err, usecase.ErrInvalidCommission),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidProductIndex):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMediatorNotFound):
		return pkg.NewDomainErrorSimple("MEDIATOR_NOT_FOUND", "Mediator not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBankNotFound):
		return pkg.NewDomainErrorSimple("BANK_NOT_FOUND", "Bank not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
