package parcel

import (
	"context"
	"errors"
	"fmt"

	"parcelservice/internal/entities"
	"parcelservice/internal/gateway/geocode"
	"parcelservice/pkg/logger"
)

// Parcel coordinates the delivery lifecycle: it is the only writer of
// parcel status and of agent availability, and owns the side effects
// attached to each transition.
type Parcel struct {
	log            serviceLogger
	repository     Repository
	agentDirectory AgentDirectory
	geocoder       Geocoder
	notifier       Notifier
	txManager      TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	agentDirectory AgentDirectory,
	geocoder Geocoder,
	notifier Notifier,
	txManager TxManager,
) *Parcel {
	return &Parcel{
		log:            log.With(),
		repository:     repository,
		agentDirectory: agentDirectory,
		geocoder:       geocoder,
		notifier:       notifier,
		txManager:      txManager,
	}
}

// Book geocodes both addresses, persists a new parcel in pending state and
// triggers a booking confirmation. Nothing is persisted when either address
// fails to resolve.
func (s *Parcel) Book(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.OwnerEmail == nil ||
		parcelModify.PickupAddress == nil ||
		parcelModify.DeliveryAddress == nil ||
		parcelModify.ParcelType == nil ||
		parcelModify.PaymentType == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidEmail(*parcelModify.OwnerEmail) {
		return nil, ErrInvalidEmail
	}
	if !isValidAddress(*parcelModify.PickupAddress) || !isValidAddress(*parcelModify.DeliveryAddress) {
		return nil, ErrInvalidAddress
	}
	if !isValidParcelType(parcelModify.ParcelType.String()) {
		return nil, ErrInvalidParcelType
	}
	if !isValidPaymentType(parcelModify.PaymentType.String()) {
		return nil, ErrInvalidPaymentType
	}

	pickupLocation, err := s.resolveAddress(ctx, *parcelModify.PickupAddress)
	if err != nil {
		return nil, err
	}
	deliveryLocation, err := s.resolveAddress(ctx, *parcelModify.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	initialStatus := entities.ParcelPending
	parcelModify.Status = &initialStatus
	parcelModify.PickupLocation = pickupLocation
	parcelModify.DeliveryLocation = deliveryLocation

	created, err := s.repository.Create(ctx, parcelModify)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}

	s.notifier.ParcelBooked(ctx, created)

	return created, nil
}

// UpdateParcel validates the requested transition against the lifecycle
// table, persists the merged update and runs the transition side effects.
// A requested status equal to the current one is treated as a plain field
// update; the status itself is a no-op.
//
// Side effects are ordered persist-first: the broadcast and, for terminal
// transitions, the availability release and the owner notification run only
// after the commit and never roll it back.
func (s *Parcel) UpdateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.ID == nil {
		return nil, ErrInvalidParcelID
	}
	if parcelModify.Status == nil &&
		parcelModify.AgentEmail == nil &&
		parcelModify.PickupAddress == nil &&
		parcelModify.DeliveryAddress == nil &&
		parcelModify.ParcelType == nil &&
		parcelModify.PaymentType == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if parcelModify.Status != nil && !isValidStatus(parcelModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Parcel
	statusChanged := false

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *parcelModify.ID)
		if err != nil {
			return fmt.Errorf("load parcel: %w", err)
		}

		if parcelModify.Status != nil && *parcelModify.Status == current.Status {
			// Self-transition: keep the rest of the update, drop the status write.
			parcelModify.Status = nil
		}

		if parcelModify.Status != nil {
			if !CanTransition(current.Status, *parcelModify.Status) {
				return ErrInvalidTransition
			}
			statusChanged = true
		}

		if err := validateAgentAttachment(current, &parcelModify); err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}

		// The busy flip shares the transaction with the assignment write so
		// an agent is never observed available while holding a fresh assignment.
		if statusChanged && updated.Status == entities.ParcelAssigned && updated.Agent != nil {
			if err := s.agentDirectory.SetAvailability(ctx, updated.Agent.Email, entities.AgentBusy); err != nil {
				return fmt.Errorf("mark agent busy: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BroadcastChanged()

	if statusChanged && updated.Status.IsTerminal() {
		if updated.Agent != nil {
			if err := s.agentDirectory.SetAvailability(ctx, updated.Agent.Email, entities.AgentAvailable); err != nil {
				// Best-effort: the committed status write stands, the
				// reconcile task heals the availability flag later.
				s.log.Error("release agent availability",
					logger.NewField("parcel", updated.ID),
					logger.NewField("agent", updated.Agent.Email),
					logger.NewField("error", err),
				)
			}
		}
		s.notifier.ParcelStatusChanged(ctx, updated)
	}

	return updated, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}
	return parcel, nil
}

func (s *Parcel) GetParcelsByOwner(ctx context.Context, ownerEmail string) ([]entities.Parcel, error) {
	if !isValidEmail(ownerEmail) {
		return nil, ErrInvalidEmail
	}

	parcels, err := s.repository.GetByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcels by owner: %w", err)
	}
	return parcels, nil
}

// GetOpenParcelsByAgent returns the agent's open assignments: parcels
// assigned to it whose status is not yet terminal.
func (s *Parcel) GetOpenParcelsByAgent(ctx context.Context, agentEmail string) ([]entities.Parcel, error) {
	if !isValidEmail(agentEmail) {
		return nil, ErrInvalidEmail
	}

	parcels, err := s.repository.GetOpenByAgent(ctx, agentEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get open parcels by agent: %w", err)
	}
	return parcels, nil
}

func (s *Parcel) resolveAddress(ctx context.Context, address string) (*entities.Coordinate, error) {
	coordinate, err := s.geocoder.Resolve(ctx, address)
	if err != nil {
		if errors.Is(err, geocode.ErrAddressNotFound) {
			return nil, fmt.Errorf("%q: %w", address, ErrInvalidAddress)
		}
		return nil, fmt.Errorf("resolve address: %w", err)
	}
	return coordinate, nil
}

// validateAgentAttachment enforces that the first agent reference arrives
// together with the transition into assigned, and that an assignment
// transition carries an agent when none is attached yet.
func validateAgentAttachment(current *entities.Parcel, parcelModify *entities.ParcelModify) error {
	attachingAgent := parcelModify.AgentEmail != nil && current.Agent == nil

	if attachingAgent {
		if !isValidEmail(*parcelModify.AgentEmail) {
			return ErrInvalidEmail
		}
		if parcelModify.Status == nil || *parcelModify.Status != entities.ParcelAssigned {
			return ErrAgentNotAllowed
		}
	}

	if parcelModify.Status != nil && *parcelModify.Status == entities.ParcelAssigned &&
		current.Agent == nil && parcelModify.AgentEmail == nil {
		return ErrAgentRequired
	}
	return nil
}
