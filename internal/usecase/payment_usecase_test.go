package usecase

import (
	"context"
	"errors"
	"testing"

	"gemtrade_backoffice/internal/domain/entities"
	mock_interfaces "gemtrade_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func float64Ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func statusPtr(s entities.PaymentStatus) *entities.PaymentStatus { return &s }

type paymentMocks struct {
	repo         *mock_interfaces.MockIPaymentRepository
	orderRepo    *mock_interfaces.MockIOrderRepository
	mediatorRepo *mock_interfaces.MockIMediatorRepository
	bankRepo     *mock_interfaces.MockIBankRepository
}

func newPaymentUseCaseWithMocks(t *testing.T) (*PaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:         mock_interfaces.NewMockIPaymentRepository(ctrl),
		orderRepo:    mock_interfaces.NewMockIOrderRepository(ctrl),
		mediatorRepo: mock_interfaces.NewMockIMediatorRepository(ctrl),
		bankRepo:     mock_interfaces.NewMockIBankRepository(ctrl),
	}
	return NewPaymentUseCase(m.repo, m.orderRepo, m.mediatorRepo, m.bankRepo, nil), m
}

func testOrder() entities.Order {
	return entities.Order{
		ID: "order-1",
		Products: []entities.Product{
			{SellingPrice: 1000, PurchasePrice: 600, PaymentCurrency: entities.CurrencyUSD},
		},
	}
}

func testMediator() entities.Mediator {
	return entities.Mediator{
		ID:              "med-1",
		Name:            "Dubai Desk",
		CommissionType:  entities.CommissionTypePercentage,
		CommissionValue: 5,
	}
}

func TestPaymentUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid order id", func(t *testing.T) {
		uc, _ := newPaymentUseCaseWithMocks(t)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "  ", MediatorID: "med-1"})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid mediator id", func(t *testing.T) {
		uc, _ := newPaymentUseCaseWithMocks(t)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "order-1"})
		if !errors.Is(err, ErrInvalidMediatorID) {
			t.Fatalf("expected ErrInvalidMediatorID, got %v", err)
		}
	})

	t.Run("negative gross", func(t *testing.T) {
		uc, _ := newPaymentUseCaseWithMocks(t)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "order-1", MediatorID: "med-1", GrossAmountUSD: -1})
		if !errors.Is(err, ErrInvalidGrossAmount) {
			t.Fatalf("expected ErrInvalidGrossAmount, got %v", err)
		}
	})

	t.Run("negative conversion rate", func(t *testing.T) {
		uc, _ := newPaymentUseCaseWithMocks(t)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "order-1", MediatorID: "med-1", ConversionRate: -0.5})
		if !errors.Is(err, ErrInvalidConversionRate) {
			t.Fatalf("expected ErrInvalidConversionRate, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, _ := newPaymentUseCaseWithMocks(t)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "order-1", MediatorID: "med-1", PaymentStatus: "SETTLED"})
		if !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "order-1", MediatorID: "med-1"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("product index out of range", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(testOrder(), nil)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "order-1", MediatorID: "med-1", ProductIndex: intPtr(3)})
		if !errors.Is(err, ErrInvalidProductIndex) {
			t.Fatalf("expected ErrInvalidProductIndex, got %v", err)
		}
	})

	t.Run("mediator not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(testOrder(), nil)
		m.mediatorRepo.EXPECT().GetByID(gomock.Any(), "med-1").Return(entities.Mediator{}, nil)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "order-1", MediatorID: "med-1"})
		if !errors.Is(err, ErrMediatorNotFound) {
			t.Fatalf("expected ErrMediatorNotFound, got %v", err)
		}
	})

	t.Run("bank not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(testOrder(), nil)
		m.mediatorRepo.EXPECT().GetByID(gomock.Any(), "med-1").Return(testMediator(), nil)
		m.bankRepo.EXPECT().GetByID(gomock.Any(), "bank-1").Return(entities.Bank{}, nil)
		_, err := uc.Create(ctx, CreatePaymentInput{OrderID: "order-1", MediatorID: "med-1", BankID: "bank-1"})
		if !errors.Is(err, ErrBankNotFound) {
			t.Fatalf("expected ErrBankNotFound, got %v", err)
		}
	})

	t.Run("snapshots mediator commission and derives fields", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(testOrder(), nil)
		m.mediatorRepo.EXPECT().GetByID(gomock.Any(), "med-1").Return(testMediator(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.PaymentStatus != entities.PaymentStatusPendingWithMediator {
					t.Fatalf("expected default status, got %s", p.PaymentStatus)
				}
				if p.MediatorCommissionType != entities.CommissionTypePercentage || p.MediatorCommissionValue != 5 {
					t.Fatalf("expected snapshotted commission terms, got %s/%v", p.MediatorCommissionType, p.MediatorCommissionValue)
				}
				if p.MediatorCommissionAmount != 50.00 || p.NetAmountUSD != 950.00 {
					t.Fatalf("expected 50.00/950.00, got %v/%v", p.MediatorCommissionAmount, p.NetAmountUSD)
				}
				if p.ExpectedAmountINR != 78964.00 {
					t.Fatalf("expected 78964.00 INR, got %v", p.ExpectedAmountINR)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		created, err := uc.Create(ctx, CreatePaymentInput{
			OrderID:        " order-1 ",
			MediatorID:     "med-1",
			GrossAmountUSD: 1000.00,
			ConversionRate: 83.12,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.OrderID != "order-1" {
			t.Fatalf("expected trimmed order id, got %q", created.OrderID)
		}
	})

	t.Run("explicit commission amount wins over derivation", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(testOrder(), nil)
		m.mediatorRepo.EXPECT().GetByID(gomock.Any(), "med-1").Return(testMediator(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		created, err := uc.Create(ctx, CreatePaymentInput{
			OrderID:                  "order-1",
			MediatorID:               "med-1",
			GrossAmountUSD:           1000.00,
			MediatorCommissionAmount: float64Ptr(30.00),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.MediatorCommissionAmount != 30.00 || created.NetAmountUSD != 970.00 {
			t.Fatalf("expected 30.00/970.00, got %v/%v", created.MediatorCommissionAmount, created.NetAmountUSD)
		}
	})

	t.Run("negative explicit commission rejected", func(t *testing.T) {
		uc, _ := newPaymentUseCaseWithMocks(t)
		_, err := uc.Create(ctx, CreatePaymentInput{
			OrderID:                  "order-1",
			MediatorID:               "med-1",
			MediatorCommissionAmount: float64Ptr(-1),
		})
		if !errors.Is(err, ErrInvalidCommission) {
			t.Fatalf("expected ErrInvalidCommission, got %v", err)
		}
	})
}

func TestPaymentUseCase_Update(t *testing.T) {
	ctx := context.Background()

	stored := func() entities.Payment {
		return entities.Recalculate(entities.Payment{
			ID:                      "pay-1",
			OrderID:                 "order-1",
			MediatorID:              "med-1",
			GrossAmountUSD:          1000.00,
			MediatorCommissionType:  entities.CommissionTypePercentage,
			MediatorCommissionValue: 5,
			ConversionRate:          83.12,
			PaymentStatus:           entities.PaymentStatusPendingWithMediator,
		}, nil)
	}

	t.Run("not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)
		_, err := uc.Update(ctx, "pay-1", UpdatePaymentInput{})
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("soft-deleted behaves as not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		deleted := stored()
		deleted.IsDeleted = true
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(deleted, nil)
		_, err := uc.Update(ctx, "pay-1", UpdatePaymentInput{})
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("gross change re-derives everything", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		updated, err := uc.Update(ctx, "pay-1", UpdatePaymentInput{GrossAmountUSD: float64Ptr(2000.00)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.MediatorCommissionAmount != 100.00 || updated.NetAmountUSD != 1900.00 {
			t.Fatalf("expected 100.00/1900.00, got %v/%v", updated.MediatorCommissionAmount, updated.NetAmountUSD)
		}
		if updated.ExpectedAmountINR != 157928.00 {
			t.Fatalf("expected 157928.00 INR, got %v", updated.ExpectedAmountINR)
		}
	})

	t.Run("mediator re-link keeps commission snapshot", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored(), nil)
		m.mediatorRepo.EXPECT().GetByID(gomock.Any(), "med-2").Return(entities.Mediator{
			ID:              "med-2",
			CommissionType:  entities.CommissionTypeFixed,
			CommissionValue: 99,
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		updated, err := uc.Update(ctx, "pay-1", UpdatePaymentInput{MediatorID: strPtr("med-2")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.MediatorID != "med-2" {
			t.Fatalf("expected re-linked mediator")
		}
		if updated.MediatorCommissionType != entities.CommissionTypePercentage || updated.MediatorCommissionValue != 5 {
			t.Fatalf("expected snapshot to survive re-link, got %s/%v", updated.MediatorCommissionType, updated.MediatorCommissionValue)
		}
		if updated.MediatorCommissionAmount != 50.00 {
			t.Fatalf("expected commission 50.00, got %v", updated.MediatorCommissionAmount)
		}
	})

	t.Run("bank credit derives exchange difference", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		updated, err := uc.Update(ctx, "pay-1", UpdatePaymentInput{
			ActualBankCreditINR: float64Ptr(78900.00),
			PaymentStatus:       statusPtr(entities.PaymentStatusCreditedToBank),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PaymentStatus != entities.PaymentStatusCreditedToBank {
			t.Fatalf("expected credited status")
		}
		if updated.ExchangeDifference == nil || *updated.ExchangeDifference != -64.00 {
			t.Fatalf("expected exchange difference -64.00, got %v", updated.ExchangeDifference)
		}
	})

	t.Run("backward transition allowed", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		credited := stored()
		credited.PaymentStatus = entities.PaymentStatusCreditedToBank
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(credited, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		updated, err := uc.Update(ctx, "pay-1", UpdatePaymentInput{
			PaymentStatus: statusPtr(entities.PaymentStatusPendingWithMediator),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PaymentStatus != entities.PaymentStatusPendingWithMediator {
			t.Fatalf("expected backward transition to pass")
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored(), nil)
		_, err := uc.Update(ctx, "pay-1", UpdatePaymentInput{PaymentStatus: statusPtr("WIRED")})
		if !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("touches only the targeted payment", func(t *testing.T) {
		// Sibling payments on the same order must be left alone: the strict
		// mock controller fails the test on any write besides pay-1's.
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "pay-1" {
					t.Fatalf("expected write for pay-1 only, got %s", p.ID)
				}
				return p, nil
			},
		)

		if _, err := uc.Update(ctx, "pay-1", UpdatePaymentInput{ConversionRate: float64Ptr(84.00)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newPaymentUseCaseWithMocks(t)
		if err := uc.Delete(ctx, " "); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("soft delete sets flags", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", OrderID: "order-1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if !p.IsDeleted || p.DeletedAt == nil {
					t.Fatalf("expected soft-delete flags, got %+v", p)
				}
				return p, nil
			},
		)

		if err := uc.Delete(ctx, "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already deleted", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", IsDeleted: true}, nil)
		if err := uc.Delete(ctx, "pay-1"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("repo error propagates", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, errors.New("db"))
		_, err := uc.GetByID(ctx, "pay-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("deleted hidden", func(t *testing.T) {
		uc, m := newPaymentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", IsDeleted: true}, nil)
		_, err := uc.GetByID(ctx, "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}
