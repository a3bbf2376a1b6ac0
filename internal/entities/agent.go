package entities

import "time"

type Agent struct {
	ID           int64
	Email        string
	Name         string
	Phone        string
	Availability AgentAvailabilityType
	AppliedAt    time.Time
	UpdatedAt    time.Time
}

type AgentAvailabilityType string

const (
	AgentAvailable AgentAvailabilityType = "available"
	AgentBusy      AgentAvailabilityType = "busy"
)

const DefaultAvailabilityType = AgentAvailable

func (t AgentAvailabilityType) String() string {
	return string(t)
}

type AgentModify struct {
	ID           *int64
	Email        *string
	Name         *string
	Phone        *string
	Availability *AgentAvailabilityType
}
