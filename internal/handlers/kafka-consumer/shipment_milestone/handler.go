package shipment_milestone

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	shipmentservice "service/internal/service/shipment"
	"service/pkg/logger"
)

// milestoneEvent is the TMS feed wire format.
type milestoneEvent struct {
	TrackingNumber string     `json:"trackingNumber"`
	Status         string     `json:"status"`
	Location       string     `json:"location"`
	Notes          string     `json:"notes"`
	OccurredAt     time.Time  `json:"occurredAt"`
	ETA            *time.Time `json:"eta"`
}

type Handler struct {
	shipmentService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shipment.milestone: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("shipment.milestone: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one feed message. Returns true when ConsumeClaim
// should stop (context cancelled, the message will be redelivered); false to
// keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event milestoneEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.milestone handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_number", event.TrackingNumber),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.milestone processing")

	milestone := entities.MilestoneEvent{
		TrackingNumber: event.TrackingNumber,
		Milestone: entities.Milestone{
			Timestamp: event.OccurredAt,
			Location:  event.Location,
			Status:    event.Status,
			Notes:     event.Notes,
		},
		ETA: event.ETA,
	}

	err = h.shipmentService.RecordMilestone(ctx, milestone)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.milestone handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.milestone handler unknown shipment")

		case errors.Is(err, shipmentservice.ErrInvalidTrackingNumber),
			errors.Is(err, shipmentservice.ErrInvalidMilestone):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.milestone handler malformed event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.milestone handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("shipment.milestone: processed")

	sess.MarkMessage(message, "")
	return false
}
