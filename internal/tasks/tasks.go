// Package tasks defines the asynq task types and payloads shared between the
// enqueue side (services) and the worker.
package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names.
const (
	TypeContactNotification = "contact:notify"
)

// ContactNotificationPayload identifies a freshly submitted contact message
// so the worker can notify the admin channel. The worker re-reads the record
// by ID; the payload only carries enough to log sensibly when it is gone.
type ContactNotificationPayload struct {
	ContactID uint   `json:"contact_id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

// NewContactNotificationTask builds the notification task for one message.
func NewContactNotificationTask(contactID uint, email, subject string) (*asynq.Task, error) {
	payload, err := json.Marshal(ContactNotificationPayload{
		ContactID: contactID,
		Email:     email,
		Subject:   subject,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeContactNotification, payload, asynq.MaxRetry(5)), nil
}
