package parcel

import "time"

type ParcelDB struct {
	ID              int64
	OwnerEmail      string
	PickupAddress   string
	DeliveryAddress string
	PickupLat       float64
	PickupLon       float64
	DeliveryLat     float64
	DeliveryLon     float64
	ParcelType      string
	PaymentType     string
	AgentEmail      *string
	AgentName       *string
	AgentPhone      *string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ParcelModifyDB struct {
	ID              *int64
	OwnerEmail      *string
	PickupAddress   *string
	DeliveryAddress *string
	PickupLat       *float64
	PickupLon       *float64
	DeliveryLat     *float64
	DeliveryLon     *float64
	ParcelType      *string
	PaymentType     *string
	AgentEmail      *string
	AgentName       *string
	AgentPhone      *string
	Status          *string
}
