package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gemtrade_backoffice/internal/domain/entities"
	"gemtrade_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrMediatorNotFound      = errors.New("mediator not found")
	ErrBankNotFound          = errors.New("bank not found")
	ErrInvalidPaymentID      = errors.New("invalid payment id")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidMediatorID     = errors.New("invalid mediator id")
	ErrInvalidGrossAmount    = errors.New("invalid gross amount")
	ErrInvalidConversionRate = errors.New("invalid conversion rate")
	ErrInvalidCommission     = errors.New("invalid commission")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrInvalidProductIndex   = errors.New("invalid product index")
)

// CreatePaymentInput records a buyer payment against an order. Commission
// fields are optional: when absent they are snapshotted from the mediator.
type CreatePaymentInput struct {
	OrderID      string
	MediatorID   string
	BankID       string
	ProductIndex *int

	GrossAmountUSD           float64
	MediatorCommissionType   *entities.CommissionType
	MediatorCommissionValue  *float64
	MediatorCommissionAmount *float64

	ConversionRate      float64
	ActualBankCreditINR *float64

	PaymentStatus entities.PaymentStatus
	Notes         string
}

// UpdatePaymentInput is a partial patch; nil fields are left untouched.
// Re-linking MediatorID does not refresh the snapshotted commission terms.
type UpdatePaymentInput struct {
	MediatorID   *string
	BankID       *string
	ProductIndex *int

	GrossAmountUSD           *float64
	MediatorCommissionType   *entities.CommissionType
	MediatorCommissionValue  *float64
	MediatorCommissionAmount *float64

	ConversionRate      *float64
	ActualBankCreditINR *float64

	PaymentStatus *entities.PaymentStatus
	Notes         *string
}

// IPaymentUseCase exposes the payment settlement operations.

type IPaymentUseCase interface {
	Create(ctx context.Context, in CreatePaymentInput) (entities.Payment, error)
	Update(ctx context.Context, id string, in UpdatePaymentInput) (entities.Payment, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	orderRepo    interfaces.IOrderRepository
	mediatorRepo interfaces.IMediatorRepository
	bankRepo     interfaces.IBankRepository
	log          *zap.SugaredLogger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	orderRepo interfaces.IOrderRepository,
	mediatorRepo interfaces.IMediatorRepository,
	bankRepo interfaces.IBankRepository,
	log *zap.SugaredLogger,
) *PaymentUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, mediatorRepo: mediatorRepo, bankRepo: bankRepo, log: log}
}

func (u *PaymentUseCase) Create(ctx context.Context, in CreatePaymentInput) (entities.Payment, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.MediatorID = strings.TrimSpace(in.MediatorID)
	in.BankID = strings.TrimSpace(in.BankID)

	if in.OrderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if in.MediatorID == "" {
		return entities.Payment{}, ErrInvalidMediatorID
	}
	if in.GrossAmountUSD < 0 {
		return entities.Payment{}, ErrInvalidGrossAmount
	}
	if in.ConversionRate < 0 {
		return entities.Payment{}, ErrInvalidConversionRate
	}
	if in.MediatorCommissionAmount != nil && *in.MediatorCommissionAmount < 0 {
		return entities.Payment{}, ErrInvalidCommission
	}
	if in.MediatorCommissionValue != nil && *in.MediatorCommissionValue < 0 {
		return entities.Payment{}, ErrInvalidCommission
	}
	if in.MediatorCommissionType != nil && !entities.ValidCommissionType(*in.MediatorCommissionType) {
		return entities.Payment{}, ErrInvalidCommission
	}

	status := in.PaymentStatus
	if status == "" {
		status = entities.PaymentStatusPendingWithMediator
	}
	if !entities.ValidPaymentStatus(status) {
		return entities.Payment{}, ErrInvalidPaymentStatus
	}

	order, err := u.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}
	if in.ProductIndex != nil && (*in.ProductIndex < 0 || *in.ProductIndex >= len(order.Products)) {
		return entities.Payment{}, ErrInvalidProductIndex
	}

	mediator, err := u.mediatorRepo.GetByID(ctx, in.MediatorID)
	if err != nil {
		return entities.Payment{}, err
	}
	if mediator.ID == "" {
		return entities.Payment{}, ErrMediatorNotFound
	}

	if in.BankID != "" {
		bank, err := u.bankRepo.GetByID(ctx, in.BankID)
		if err != nil {
			return entities.Payment{}, err
		}
		if bank.ID == "" {
			return entities.Payment{}, ErrBankNotFound
		}
	}

	// Snapshot the mediator's commission terms unless the caller overrides
	// them; later mediator edits must not rewrite this payment.
	commissionType := mediator.CommissionType
	commissionValue := mediator.CommissionValue
	if in.MediatorCommissionType != nil {
		commissionType = *in.MediatorCommissionType
	}
	if in.MediatorCommissionValue != nil {
		commissionValue = *in.MediatorCommissionValue
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:                      uuid.NewString(),
		OrderID:                 in.OrderID,
		ProductIndex:            in.ProductIndex,
		MediatorID:              in.MediatorID,
		BankID:                  in.BankID,
		GrossAmountUSD:          in.GrossAmountUSD,
		MediatorCommissionType:  commissionType,
		MediatorCommissionValue: commissionValue,
		ConversionRate:          in.ConversionRate,
		ActualBankCreditINR:     in.ActualBankCreditINR,
		PaymentStatus:           status,
		Notes:                   in.Notes,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	p = entities.Recalculate(p, in.MediatorCommissionAmount)

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Errorw("payment create failed", "order_id", in.OrderID, "err", err)
		return entities.Payment{}, err
	}
	u.log.Infow("payment created",
		"payment_id", created.ID,
		"order_id", created.OrderID,
		"mediator_id", created.MediatorID,
		"gross_usd", created.GrossAmountUSD,
		"status", created.PaymentStatus,
	)
	return created, nil
}

func (u *PaymentUseCase) Update(ctx context.Context, id string, in UpdatePaymentInput) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" || p.IsDeleted {
		return entities.Payment{}, ErrPaymentNotFound
	}

	if in.MediatorID != nil {
		mediatorID := strings.TrimSpace(*in.MediatorID)
		if mediatorID == "" {
			return entities.Payment{}, ErrInvalidMediatorID
		}
		mediator, err := u.mediatorRepo.GetByID(ctx, mediatorID)
		if err != nil {
			return entities.Payment{}, err
		}
		if mediator.ID == "" {
			return entities.Payment{}, ErrMediatorNotFound
		}
		// Link only; the commission snapshot stays with the payment.
		p.MediatorID = mediatorID
	}

	if in.BankID != nil {
		bankID := strings.TrimSpace(*in.BankID)
		if bankID != "" {
			bank, err := u.bankRepo.GetByID(ctx, bankID)
			if err != nil {
				return entities.Payment{}, err
			}
			if bank.ID == "" {
				return entities.Payment{}, ErrBankNotFound
			}
		}
		p.BankID = bankID
	}

	if in.ProductIndex != nil {
		order, err := u.orderRepo.GetByID(ctx, p.OrderID)
		if err != nil {
			return entities.Payment{}, err
		}
		if order.ID == "" {
			return entities.Payment{}, ErrOrderNotFound
		}
		if *in.ProductIndex < 0 || *in.ProductIndex >= len(order.Products) {
			return entities.Payment{}, ErrInvalidProductIndex
		}
		p.ProductIndex = in.ProductIndex
	}

	if in.GrossAmountUSD != nil {
		if *in.GrossAmountUSD < 0 {
			return entities.Payment{}, ErrInvalidGrossAmount
		}
		p.GrossAmountUSD = *in.GrossAmountUSD
	}
	if in.MediatorCommissionType != nil {
		if !entities.ValidCommissionType(*in.MediatorCommissionType) {
			return entities.Payment{}, ErrInvalidCommission
		}
		p.MediatorCommissionType = *in.MediatorCommissionType
	}
	if in.MediatorCommissionValue != nil {
		if *in.MediatorCommissionValue < 0 {
			return entities.Payment{}, ErrInvalidCommission
		}
		p.MediatorCommissionValue = *in.MediatorCommissionValue
	}
	if in.MediatorCommissionAmount != nil && *in.MediatorCommissionAmount < 0 {
		return entities.Payment{}, ErrInvalidCommission
	}
	if in.ConversionRate != nil {
		if *in.ConversionRate < 0 {
			return entities.Payment{}, ErrInvalidConversionRate
		}
		p.ConversionRate = *in.ConversionRate
	}
	if in.ActualBankCreditINR != nil {
		p.ActualBankCreditINR = in.ActualBankCreditINR
	}
	if in.PaymentStatus != nil {
		if !entities.ValidPaymentStatus(*in.PaymentStatus) {
			return entities.Payment{}, ErrInvalidPaymentStatus
		}
		p.PaymentStatus = *in.PaymentStatus
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}

	p = entities.Recalculate(p, in.MediatorCommissionAmount)
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		u.log.Errorw("payment update failed", "payment_id", id, "err", err)
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		// Lost a race with a concurrent hard removal.
		return entities.Payment{}, ErrPaymentNotFound
	}
	u.log.Infow("payment updated", "payment_id", updated.ID, "order_id", updated.OrderID, "status", updated.PaymentStatus)
	return updated, nil
}

func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" || p.IsDeleted {
		return ErrPaymentNotFound
	}

	now := time.Now().UTC()
	p.IsDeleted = true
	p.DeletedAt = &now
	p.UpdatedAt = now

	if _, err := u.repo.Update(ctx, p); err != nil {
		u.log.Errorw("payment delete failed", "payment_id", id, "err", err)
		return err
	}
	u.log.Infow("payment soft-deleted", "payment_id", id, "order_id", p.OrderID)
	return nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" || p.IsDeleted {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}
