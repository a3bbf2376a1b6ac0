//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_test
package agent

import (
	"context"

	"parcelservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, agentModifyEntity entities.AgentModify) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entities.Agent, error)
	GetAll(ctx context.Context) ([]entities.Agent, error)
	UpdateAvailabilityByEmail(ctx context.Context, email string, availability entities.AgentAvailabilityType) error
	Delete(ctx context.Context, id int64) error
	UpdateAvailableWhereNoOpenParcels(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
