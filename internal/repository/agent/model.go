package agent

import "time"

type AgentDB struct {
	ID           int64
	Email        string
	Name         string
	Phone        string
	Availability string
	AppliedAt    time.Time
	UpdatedAt    time.Time
}

type AgentModifyDB struct {
	ID           *int64
	Email        *string
	Name         *string
	Phone        *string
	Availability *string
}
