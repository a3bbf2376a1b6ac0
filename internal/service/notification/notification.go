package notification

import (
	"context"
	"time"

	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

// statusUpdatedSignal is the payload pushed to live viewers. It carries no
// body on purpose; clients re-fetch the resources they display.
const statusUpdatedSignal = "status-updated"

// Dispatcher fans a committed parcel change out to the email pipeline and
// to live viewers. Every method is fire-and-forget: failures are logged and
// swallowed, because the state change that triggered them already stands.
type Dispatcher struct {
	log      serviceLogger
	producer EventProducer
	hub      Broadcaster
}

func New(log serviceLogger, producer EventProducer, hub Broadcaster) *Dispatcher {
	return &Dispatcher{
		log:      log.With(),
		producer: producer,
		hub:      hub,
	}
}

func (d *Dispatcher) ParcelBooked(ctx context.Context, parcel *entities.Parcel) {
	d.publish(ctx, entities.EventParcelBooked, parcel)
}

func (d *Dispatcher) ParcelStatusChanged(ctx context.Context, parcel *entities.Parcel) {
	d.publish(ctx, entities.EventParcelStatusChanged, parcel)
}

func (d *Dispatcher) BroadcastChanged() {
	d.hub.Broadcast(statusUpdatedSignal)
}

func (d *Dispatcher) publish(ctx context.Context, eventType entities.ParcelEventType, parcel *entities.Parcel) {
	event := entities.ParcelEvent{
		Type:            eventType,
		ParcelID:        parcel.ID,
		OwnerEmail:      parcel.OwnerEmail,
		Status:          parcel.Status,
		PickupAddress:   parcel.PickupAddress,
		DeliveryAddress: parcel.DeliveryAddress,
		OccurredAt:      time.Now().UTC(),
	}
	if parcel.Agent != nil {
		event.AgentEmail = parcel.Agent.Email
	}

	if err := d.producer.Publish(ctx, event); err != nil {
		d.log.Error("publish parcel event",
			logger.NewField("type", eventType.String()),
			logger.NewField("parcel", parcel.ID),
			logger.NewField("error", err),
		)
	}
}
