package entities

import "time"

// ParcelEventType names the notification events published to the broker.
type ParcelEventType string

const (
	EventParcelBooked        ParcelEventType = "parcel.booked"
	EventParcelStatusChanged ParcelEventType = "parcel.status.changed"
)

func (t ParcelEventType) String() string {
	return string(t)
}

// ParcelEvent is the wire payload handed to the notify worker.
// Delivery is at-least-once; consumers must tolerate duplicates.
type ParcelEvent struct {
	Type            ParcelEventType  `json:"type"`
	ParcelID        int64            `json:"parcel_id"`
	OwnerEmail      string           `json:"owner_email"`
	Status          ParcelStatusType `json:"status"`
	PickupAddress   string           `json:"pickup_address"`
	DeliveryAddress string           `json:"delivery_address"`
	AgentEmail      string           `json:"agent_email,omitempty"`
	OccurredAt      time.Time        `json:"occurred_at"`
}
