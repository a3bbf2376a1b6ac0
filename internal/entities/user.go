package entities

import "time"

type User struct {
	ID        int64
	Email     string
	Role      UserRoleType
	CreatedAt time.Time
}

type UserRoleType string

const (
	RoleCustomer      UserRoleType = "customer"
	RoleDeliveryAgent UserRoleType = "deliveryAgent"
	RoleAdmin         UserRoleType = "admin"
)

const DefaultRoleType = RoleCustomer

func (r UserRoleType) String() string {
	return string(r)
}

type UserModify struct {
	ID    *int64
	Email *string
	Role  *UserRoleType
}
