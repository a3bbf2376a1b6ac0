package agent

import (
	"parcelservice/internal/entities"
)

func ToDomain(a *AgentDB) *entities.Agent {
	if a == nil {
		return nil
	}

	return &entities.Agent{
		ID:           a.ID,
		Email:        a.Email,
		Name:         a.Name,
		Phone:        a.Phone,
		Availability: entities.AgentAvailabilityType(a.Availability),
		AppliedAt:    a.AppliedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromDomainModify(agentModify *entities.AgentModify) *AgentModifyDB {
	if agentModify == nil {
		return nil
	}
	agentDB := &AgentModifyDB{
		ID:    agentModify.ID,
		Email: agentModify.Email,
		Name:  agentModify.Name,
		Phone: agentModify.Phone,
	}

	if agentModify.Availability != nil {
		availability := agentModify.Availability.String()
		agentDB.Availability = &availability
	}

	return agentDB
}

func ToDomainList(agentsDB []AgentDB) []entities.Agent {
	if len(agentsDB) == 0 {
		return []entities.Agent{}
	}

	result := make([]entities.Agent, len(agentsDB))
	for i, agentDB := range agentsDB {
		result[i] = *ToDomain(&agentDB)
	}
	return result
}
