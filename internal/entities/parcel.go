package entities

import "time"

// Coordinate is a geocoded point, latitude/longitude in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// AgentRef is the denormalized reference to the assigned delivery agent,
// set only after a parcel enters the assigned state.
type AgentRef struct {
	Email string
	Name  string
	Phone string
}

type Parcel struct {
	ID               int64
	OwnerEmail       string
	PickupAddress    string
	DeliveryAddress  string
	PickupLocation   Coordinate
	DeliveryLocation Coordinate
	ParcelType       ParcelSizeType
	PaymentType      PaymentType
	Agent            *AgentRef
	Status           ParcelStatusType
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ParcelStatusType string

const (
	ParcelPending   ParcelStatusType = "pending"
	ParcelAssigned  ParcelStatusType = "assigned"
	ParcelInTransit ParcelStatusType = "in_transit"
	ParcelDelivered ParcelStatusType = "delivered"
	ParcelFailed    ParcelStatusType = "failed"
	ParcelCancelled ParcelStatusType = "cancelled"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is permitted from s.
func (s ParcelStatusType) IsTerminal() bool {
	switch s {
	case ParcelDelivered, ParcelFailed, ParcelCancelled:
		return true
	default:
		return false
	}
}

type ParcelSizeType string

const (
	ParcelDocument ParcelSizeType = "document"
	ParcelSmall    ParcelSizeType = "small"
	ParcelMedium   ParcelSizeType = "medium"
	ParcelLarge    ParcelSizeType = "large"
)

func (t ParcelSizeType) String() string {
	return string(t)
}

type PaymentType string

const (
	PaymentCashOnDelivery PaymentType = "cod"
	PaymentPrepaid        PaymentType = "prepaid"
)

func (t PaymentType) String() string {
	return string(t)
}

// ParcelModify carries a partial update; nil fields stay untouched.
type ParcelModify struct {
	ID               *int64
	OwnerEmail       *string
	PickupAddress    *string
	DeliveryAddress  *string
	PickupLocation   *Coordinate
	DeliveryLocation *Coordinate
	ParcelType       *ParcelSizeType
	PaymentType      *PaymentType
	AgentEmail       *string
	AgentName        *string
	AgentPhone       *string
	Status           *ParcelStatusType
}
