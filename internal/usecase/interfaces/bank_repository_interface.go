package interfaces

import (
	"context"

	"gemtrade_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=bank_repository_interface.go -destination=mocks/mock_bank_repository.go -package=mock_interfaces

// IBankRepository exists so payments can validate their optional bank link.
type IBankRepository interface {
	GetByID(ctx context.Context, id string) (entities.Bank, error)
}
