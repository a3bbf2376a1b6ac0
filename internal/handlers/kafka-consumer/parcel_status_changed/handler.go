package parcel_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parcelservice/internal/entities"
	"parcelservice/pkg/logger"
)

type Handler struct {
	mailer                   Mailer
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, mailer Mailer, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		mailer:                   mailer,
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
				h.log.Info("parcel events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Session closed on rebalance or consumer group shutdown.
			h.log.Info("parcel events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim should stop (context cancelled), false to keep consuming.
// Notification delivery is best effort: a failed send is logged and the
// message is marked so a broken mailbox cannot stall the partition.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.ParcelEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_type", string(event.Type)),
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel event processing")

	err = h.mailer.SendParcelEvent(ctx, event)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel events handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Warn("parcel events handler failed to send notification email")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("parcel event processed")

	sess.MarkMessage(message, "")
	return false
}
