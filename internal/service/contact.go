package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
	"github.com/Yashkhope01/Blog/internal/tasks"
)

const maxContactMessageLength = 2000

// TaskEnqueuer is the slice of asynq.Client the contact service needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ContactService owns the inbox workflow: public submission, the
// unread-to-read transition on first admin view, and the free-form status
// updates admins may apply afterwards.
type ContactService struct {
	contactRepo repository.ContactRepository
	enqueuer    TaskEnqueuer
}

// NewContactService creates a ContactService. enqueuer may be nil; the
// notification task is then skipped.
func NewContactService(contactRepo repository.ContactRepository, enqueuer TaskEnqueuer) *ContactService {
	if contactRepo == nil {
		panic("ContactRepository cannot be nil for ContactService")
	}
	return &ContactService{contactRepo: contactRepo, enqueuer: enqueuer}
}

// SubmitContactInput carries a public contact-form submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit stores a new message in the unread state and enqueues an admin
// notification. The enqueue is best-effort: a broker failure is logged and
// never fails the submission.
func (s *ContactService) Submit(ctx context.Context, in SubmitContactInput) (*domain.Contact, error) {
	logCtx := logrus.WithFields(logrus.Fields{"email": in.Email, "subject": in.Subject})

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" || in.Email == "" || in.Subject == "" || in.Message == "" {
		return nil, fmt.Errorf("%w: name, email, subject and message are required", ErrInvalidInput)
	}
	if len(in.Message) > maxContactMessageLength {
		return nil, fmt.Errorf("%w: message cannot be more than %d characters", ErrInvalidInput, maxContactMessageLength)
	}

	contact := &domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  domain.ContactStatusUnread,
	}
	if err := s.contactRepo.Save(ctx, contact); err != nil {
		logCtx.WithError(err).Error("Database error during contact submission")
		return nil, ErrInternalServer
	}
	logCtx = logCtx.WithField("contact_id", contact.ID)

	if s.enqueuer != nil {
		task, err := tasks.NewContactNotificationTask(contact.ID, contact.Email, contact.Subject)
		if err != nil {
			logCtx.WithError(err).Warn("Failed to build contact notification task")
		} else if _, err := s.enqueuer.EnqueueContext(ctx, task); err != nil {
			logCtx.WithError(err).Warn("Failed to enqueue contact notification task")
		}
	}

	logCtx.Info("Contact message submitted successfully")
	return contact, nil
}

// ContactListQuery narrows and pages the inbox listing.
type ContactListQuery struct {
	Status string
	Page   int
	Limit  int
}

// List returns a page of messages, newest first, optionally filtered by
// status.
func (s *ContactService) List(ctx context.Context, q ContactListQuery) ([]domain.Contact, PageInfo, error) {
	if q.Status != "" && !domain.ValidContactStatus(q.Status) {
		return nil, PageInfo{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, q.Status)
	}
	if q.Page <= 0 {
		q.Page = defaultPage
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}

	contacts, total, err := s.contactRepo.List(ctx, repository.ContactQuery{
		Status: q.Status,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to list contacts")
		return nil, PageInfo{}, ErrInternalServer
	}

	return contacts, PageInfo{
		Count: len(contacts),
		Total: total,
		Page:  q.Page,
		Pages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}, nil
}

// Get loads a single message. This read has a deliberate side effect: an
// unread message transitions to read on its first admin view, and the
// transition is persisted before the message is returned.
func (s *ContactService) Get(ctx context.Context, id uint) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, ErrContactNotFound
		}
		logrus.WithError(err).WithField("contact_id", id).Error("Failed to load contact")
		return nil, ErrInternalServer
	}

	if contact.Status == domain.ContactStatusUnread {
		contact.Status = domain.ContactStatusRead
		if err := s.contactRepo.Save(ctx, contact); err != nil {
			logrus.WithError(err).WithField("contact_id", id).Error("Failed to mark contact as read")
			return nil, ErrInternalServer
		}
	}
	return contact, nil
}

// UpdateContactInput carries the admin-editable fields; empty strings leave
// the stored value unchanged.
type UpdateContactInput struct {
	Status   string
	Response string
}

// Update lets an admin set any status value directly (the workflow is
// free-form, not a strict state machine) and attach a response text. Nothing
// couples the response to the status.
func (s *ContactService) Update(ctx context.Context, id uint, in UpdateContactInput) (*domain.Contact, error) {
	logCtx := logrus.WithField("contact_id", id)

	if in.Status != "" && !domain.ValidContactStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}

	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, ErrContactNotFound
		}
		logCtx.WithError(err).Error("Failed to load contact for update")
		return nil, ErrInternalServer
	}

	if in.Status != "" {
		contact.Status = in.Status
	}
	if in.Response != "" {
		contact.Response = in.Response
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		logCtx.WithError(err).Error("Database error during contact update")
		return nil, ErrInternalServer
	}

	logCtx.WithField("status", contact.Status).Info("Contact message updated")
	return contact, nil
}

// Delete removes a message from the inbox.
func (s *ContactService) Delete(ctx context.Context, id uint) error {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return ErrContactNotFound
		}
		logrus.WithError(err).WithField("contact_id", id).Error("Database error during contact delete")
		return ErrInternalServer
	}
	logrus.WithField("contact_id", id).Info("Contact message deleted")
	return nil
}
