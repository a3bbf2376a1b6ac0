package agent

import (
	"context"
	"fmt"

	"parcelservice/internal/entities"
)

// Agent is the directory of delivery-agent accounts and their
// availability flags.
type Agent struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Agent {
	return &Agent{
		repository: repository,
		txManager:  txManager,
	}
}

// Apply registers a delivery-agent application. One application per email;
// a duplicate fails with ErrConflict.
func (s *Agent) Apply(ctx context.Context, agentModify entities.AgentModify) (int64, error) {
	if agentModify.Email == nil ||
		agentModify.Name == nil ||
		agentModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidEmail(*agentModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidName(*agentModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*agentModify.Phone) {
		return 0, ErrInvalidPhone
	}

	if agentModify.Availability == nil {
		availability := entities.DefaultAvailabilityType
		agentModify.Availability = &availability
	} else if !isValidAvailability(agentModify.Availability.String()) {
		return 0, ErrInvalidAvailability
	}

	id, err := s.repository.Create(ctx, agentModify)
	if err != nil {
		return 0, fmt.Errorf("create agent: %w", err)
	}

	return id, nil
}

func (s *Agent) GetAgent(ctx context.Context, email string) (*entities.Agent, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	agent, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return agent, nil
}

func (s *Agent) GetAgents(ctx context.Context) ([]entities.Agent, error) {
	agents, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agents: %w", err)
	}
	return agents, nil
}

func (s *Agent) DeleteAgent(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAgentID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// SetAvailability flips the agent's availability flag. The write is
// idempotent and order-independent: setting an already-set value succeeds
// and changes nothing.
func (s *Agent) SetAvailability(ctx context.Context, email string, availability entities.AgentAvailabilityType) error {
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}
	if !isValidAvailability(availability.String()) {
		return ErrInvalidAvailability
	}

	if err := s.repository.UpdateAvailabilityByEmail(ctx, email, availability); err != nil {
		return fmt.Errorf("update availability: %w", err)
	}
	return nil
}

// ReconcileAvailability marks agents available when they hold zero open
// assignments. It heals availability flags whose best-effort release after
// a terminal transition was lost.
func (s *Agent) ReconcileAvailability(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.UpdateAvailableWhereNoOpenParcels(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile availability: %w", err)
	}
	return rowsAffected, nil
}
