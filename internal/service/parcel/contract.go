//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	GetByOwner(ctx context.Context, ownerEmail string) ([]entities.Parcel, error)
	GetOpenByAgent(ctx context.Context, agentEmail string) ([]entities.Parcel, error)
}

type AgentDirectory interface {
	SetAvailability(ctx context.Context, email string, availability entities.AgentAvailabilityType) error
}

type Geocoder interface {
	Resolve(ctx context.Context, address string) (*entities.Coordinate, error)
}

// Notifier fans out a committed change. Implementations are best-effort:
// they log failures internally and never return them.
type Notifier interface {
	ParcelBooked(ctx context.Context, parcel *entities.Parcel)
	ParcelStatusChanged(ctx context.Context, parcel *entities.Parcel)
	BroadcastChanged()
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
