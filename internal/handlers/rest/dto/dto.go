// Package dto holds the request and response shapes of the REST surface.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type UserCreate struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type UserCreateResponse struct {
	ID int64 `json:"id"`
}

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UserRoleUpdate struct {
	Role         string  `json:"role"`
	Availability *string `json:"availability,omitempty"`
}

type AgentCreate struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AgentCreateResponse struct {
	ID int64 `json:"id"`
}

type Agent struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Availability string    `json:"availability"`
	AppliedAt    time.Time `json:"applied_at"`
}

type ParcelCreate struct {
	OwnerEmail      string `json:"owner_email"`
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
	ParcelType      string `json:"parcel_type"`
	PaymentType     string `json:"payment_type"`
}

type ParcelAgent struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Parcel struct {
	ID               int64        `json:"id"`
	OwnerEmail       string       `json:"owner_email"`
	PickupAddress    string       `json:"pickup_address"`
	DeliveryAddress  string       `json:"delivery_address"`
	PickupLocation   Location     `json:"pickup_location"`
	DeliveryLocation Location     `json:"delivery_location"`
	ParcelType       string       `json:"parcel_type"`
	PaymentType      string       `json:"payment_type"`
	Agent            *ParcelAgent `json:"agent,omitempty"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type ParcelUpdate struct {
	Status      *string `json:"status,omitempty"`
	ParcelType  *string `json:"parcel_type,omitempty"`
	PaymentType *string `json:"payment_type,omitempty"`
	AgentEmail  *string `json:"agent_email,omitempty"`
	AgentName   *string `json:"agent_name,omitempty"`
	AgentPhone  *string `json:"agent_phone,omitempty"`
}

type StatusUpdate struct {
	ParcelID   int64   `json:"parcel_id"`
	Status     string  `json:"status"`
	AgentEmail *string `json:"agent_email,omitempty"`
	AgentName  *string `json:"agent_name,omitempty"`
	AgentPhone *string `json:"agent_phone,omitempty"`
}
