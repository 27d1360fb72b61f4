package interfaces

import (
	"context"

	"gemtrade_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/mock_order_repository.go -package=mock_interfaces

// IOrderRepository is the read-only view of order storage this service
// needs: cost fields and product lines. Order mutation lives with the order
// controllers, outside this service.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// GetByIDs batch-loads orders; ids absent from storage are simply
	// missing from the result.
	GetByIDs(ctx context.Context, ids []string) ([]entities.Order, error)
}
