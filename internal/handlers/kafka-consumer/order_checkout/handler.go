package order_checkout

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"herbmart/internal/entities"
	orderservice "herbmart/internal/service/order"
	"herbmart/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
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
				h.log.Info("order.checkout.completed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// session ended, rebalance or consumer group shutdown
			h.log.Info("order.checkout.completed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled), false to continue with
// the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event checkoutEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.checkout.completed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("user", event.UserID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.checkout.completed processing")

	order, err := h.orderService.IngestCheckout(ctx, toOrder(event))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.checkout.completed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderExists):
			// redelivery of an already ingested order, safe to skip
			msgLog.Info("order.checkout.completed handler order already ingested")

		case errors.Is(err, orderservice.ErrMissingItems),
			errors.Is(err, orderservice.ErrInvalidAmount),
			errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrInvalidUserID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.checkout.completed handler rejected malformed order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.checkout.completed handler failed to ingest order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.checkout.completed: ingested")

	sess.MarkMessage(message, "")
	return false
}

func toOrder(event checkoutEvent) entities.Order {
	order := entities.Order{
		ID:          event.OrderID,
		UserID:      event.UserID,
		TotalAmount: event.TotalAmount,
		OrderedAt:   event.OrderedAt,
	}

	for _, item := range event.Items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if event.Destination != nil {
		order.Destination = &entities.GeoPoint{
			Latitude:  event.Destination.Latitude,
			Longitude: event.Destination.Longitude,
		}
	}

	return order
}
