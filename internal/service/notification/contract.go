//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

// EventProducer hands a parcel event to the message broker for the
// notify worker. Delivery is at-least-once.
type EventProducer interface {
	Publish(ctx context.Context, event entities.ParcelEvent) error
}

// Broadcaster pushes a bare signal to currently connected live viewers.
type Broadcaster interface {
	Broadcast(message string)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
