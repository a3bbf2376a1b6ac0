//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=update_status_post_test
package update_status_post

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

type Broadcaster interface {
	BroadcastChanged()
}
