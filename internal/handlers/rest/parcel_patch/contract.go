//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_patch_test
package parcel_patch

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
	UpdateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
}
