package shipment

import (
	"context"
	"fmt"
	"strings"

	"service/internal/entities"
)

// Shipment serves tracking lookups for both channels and applies milestone
// events from the TMS feed.
type Shipment struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Shipment {
	return &Shipment{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Shipment) GetShipment(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrInvalidTrackingNumber
	}

	found, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return found, nil
}

func (s *Shipment) ListShipments(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return shipments, nil
}

// RecordMilestone appends one milestone and rolls the shipment's status,
// lastUpdated and (when the event carries one) eta forward. Milestones are
// append-only: arrival order is chronological order, and the shipment always
// reflects the newest milestone.
func (s *Shipment) RecordMilestone(ctx context.Context, event entities.MilestoneEvent) error {
	if strings.TrimSpace(event.TrackingNumber) == "" {
		return ErrInvalidTrackingNumber
	}
	if strings.TrimSpace(event.Milestone.Status) == "" || event.Milestone.Timestamp.IsZero() {
		return ErrInvalidMilestone
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.AppendMilestone(ctx, event.TrackingNumber, event.Milestone); err != nil {
			return fmt.Errorf("append milestone: %w", err)
		}

		err := s.repository.UpdateProgress(
			ctx,
			event.TrackingNumber,
			event.Milestone.Status,
			event.Milestone.Timestamp,
			event.ETA,
		)
		if err != nil {
			return fmt.Errorf("update shipment progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record milestone: %w", err)
	}
	return nil
}
