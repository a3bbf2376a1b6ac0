package parcel_status_changed

import (
	"context"

	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Mailer interface {
	SendParcelEvent(ctx context.Context, event entities.ParcelEvent) error
}
