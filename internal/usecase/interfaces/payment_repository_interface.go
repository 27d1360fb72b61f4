package interfaces

import (
	"context"

	"gemtrade_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/mock_payment_repository.go -package=mock_interfaces

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Not-found reads return a zero-value Payment (empty ID) with a nil error;
// the usecase layer maps that to its sentinel errors. Deletion is soft only:
// Update persists the IsDeleted flag, and the list methods filter deleted
// payments out so aggregates never see them.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	// ListByOrderIDs loads every non-deleted payment belonging to any of the
	// given orders in a constant number of bulk reads, for in-memory grouping.
	ListByOrderIDs(ctx context.Context, orderIDs []string) ([]entities.Payment, error)
}
