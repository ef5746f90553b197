package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/Yashkhope01/Blog/internal/repository"
	"github.com/Yashkhope01/Blog/internal/tasks"
)

// ContactNotificationHandler processes contact:notify tasks. It re-reads the
// message and emits the admin notification. Delivery is a structured log
// line on the admin channel; swapping in a mail transport only touches this
// handler.
type ContactNotificationHandler struct {
	contactRepo repository.ContactRepository
}

// NewContactNotificationHandler creates the handler.
func NewContactNotificationHandler(contactRepo repository.ContactRepository) *ContactNotificationHandler {
	return &ContactNotificationHandler{contactRepo: contactRepo}
}

// ProcessTask implements asynq.Handler.
func (h *ContactNotificationHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload tasks.ContactNotificationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logrus.WithError(err).Error("Failed to unmarshal contact notification payload")
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	logCtx := logrus.WithFields(logrus.Fields{
		"task_type":  t.Type(),
		"contact_id": payload.ContactID,
	})

	contact, err := h.contactRepo.FindByID(ctx, payload.ContactID)
	if err != nil {
		// A message deleted before the worker ran is not a failure worth
		// retrying.
		if errors.Is(err, repository.ErrContactNotFound) {
			logCtx.Warn("Contact message vanished before notification; skipping")
			return nil
		}
		logCtx.WithError(err).Error("Failed to load contact for notification")
		return fmt.Errorf("failed to load contact %d: %w", payload.ContactID, err)
	}

	logCtx.WithFields(logrus.Fields{
		"from":    contact.Email,
		"subject": contact.Subject,
		"status":  contact.Status,
	}).Info("New contact message received")
	return nil
}
