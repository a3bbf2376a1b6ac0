package availability_reconcile

import (
	"context"
	"time"

	"parcelservice/pkg/logger"
)

type Service interface {
	ReconcileAvailability(ctx context.Context) (int64, error)
}

// AvailabilityReconcile periodically frees agents that stayed busy after
// their last parcel reached a terminal state, covering crashes between
// the status commit and the availability release.
type AvailabilityReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func New(log logger.Logger, service Service, interval time.Duration) *AvailabilityReconcile {
	return &AvailabilityReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AvailabilityReconcile) TTL() time.Duration {
	return a.interval
}

func (a *AvailabilityReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.ReconcileAvailability(ctxWithTimeout)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("released_agents", rowsAffected),
		).Info("availability reconcile")
	}

	return err
}

func (a *AvailabilityReconcile) Info() string {
	return "availability reconcile"
}
