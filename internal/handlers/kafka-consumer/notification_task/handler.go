package notification_task

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/pkg/kafka"
	"fastfeet/internal/service/notification"
	"fastfeet/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	return &Handler{
		notificationService:      notificationService,
		log:                      log.With(logger.NewField("handler", "notification_task")),
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
				h.log.Info("notification task: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// ребалансировка или остановка группы
			h.log.Info("notification task: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать.
// Сообщение в этом случае не помечается и будет доставлено повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	task, err := kafka.DecodeTaskMessage(message)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("notification task handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("task", task.Key.String()),
		logger.NewField("task_id", task.ID),
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("notification task processing")

	processed, err := h.notificationService.ProcessTask(ctx, task)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || sess.Context().Err() != nil:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification task handler context cancelled, message will be reprocessed")
			return true

		// результат не записан: без отметки задача осталась бы published навсегда
		case errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
				logger.NewField("timeout", h.messageProcessingTimeout.String()),
			).Warn("notification task handler timed out without result, message will be reprocessed")
			return true

		case errors.Is(err, notification.ErrTaskNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification task handler: task is not in outbox, skipping")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("notification task handler failed to record task result")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("status", processed.Status.String()),
	).Info("notification task: processed")

	sess.MarkMessage(message, "")
	return false
}
