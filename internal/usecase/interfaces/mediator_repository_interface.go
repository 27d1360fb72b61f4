package interfaces

import (
	"context"

	"gemtrade_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=mediator_repository_interface.go -destination=mocks/mock_mediator_repository.go -package=mock_interfaces

// IMediatorRepository is read once per payment creation to snapshot the
// mediator's commission terms onto the new payment.
type IMediatorRepository interface {
	GetByID(ctx context.Context, id string) (entities.Mediator, error)
}
