//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_assigned_get_test
package parcels_assigned_get

import (
	"context"

	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetOpenParcelsByAgent(ctx context.Context, agentEmail string) ([]entities.Parcel, error)
}
