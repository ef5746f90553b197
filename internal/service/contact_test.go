package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
	"github.com/Yashkhope01/Blog/internal/repository/mocks"
	"github.com/Yashkhope01/Blog/internal/service"
	"github.com/Yashkhope01/Blog/internal/tasks"
)

// mockEnqueuer records the tasks handed to it, standing in for asynq.Client.
type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	if info, ok := args.Get(0).(*asynq.TaskInfo); ok {
		return info, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestContactService_Submit_SavesUnreadAndEnqueues(t *testing.T) {
	// Arrange
	mockContactRepo := new(mocks.ContactRepository)
	enqueuer := new(mockEnqueuer)
	contactService := service.NewContactService(mockContactRepo, enqueuer)
	ctx := context.Background()

	mockContactRepo.On("Save", ctx, mock.MatchedBy(func(c *domain.Contact) bool {
		assert.Equal(t, "Jane", c.Name)
		assert.Equal(t, domain.ContactStatusUnread, c.Status)
		return true
	})).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Contact).ID = 15 }).
		Return(nil).
		Once()

	enqueuer.On("EnqueueContext", ctx, mock.MatchedBy(func(task *asynq.Task) bool {
		if task.Type() != tasks.TypeContactNotification {
			return false
		}
		var p tasks.ContactNotificationPayload
		require.NoError(t, json.Unmarshal(task.Payload(), &p))
		return p.ContactID == 15 && p.Email == "jane@example.com"
	})).Return(&asynq.TaskInfo{}, nil).Once()

	// Act
	contact, err := contactService.Submit(ctx, service.SubmitContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "Question about a post",
	})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, uint(15), contact.ID)
	mockContactRepo.AssertExpectations(t)
	enqueuer.AssertExpectations(t)
}

func TestContactService_Submit_EnqueueFailureDoesNotFailSubmission(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	enqueuer := new(mockEnqueuer)
	contactService := service.NewContactService(mockContactRepo, enqueuer)
	ctx := context.Background()

	mockContactRepo.On("Save", ctx, mock.AnythingOfType("*domain.Contact")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Contact).ID = 16 }).
		Return(nil).
		Once()
	enqueuer.On("EnqueueContext", ctx, mock.AnythingOfType("*asynq.Task")).
		Return(nil, errors.New("redis down")).
		Once()

	contact, err := contactService.Submit(ctx, service.SubmitContactInput{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "msg",
	})

	assert.NoError(t, err, "broker failure must not surface to the submitter")
	require.NotNil(t, contact)
	enqueuer.AssertExpectations(t)
}

func TestContactService_Submit_NilEnqueuer(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	contactService := service.NewContactService(mockContactRepo, nil)
	ctx := context.Background()

	mockContactRepo.On("Save", ctx, mock.AnythingOfType("*domain.Contact")).Return(nil).Once()

	_, err := contactService.Submit(ctx, service.SubmitContactInput{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "msg",
	})

	assert.NoError(t, err)
	mockContactRepo.AssertExpectations(t)
}

func TestContactService_Submit_MissingFields(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	contactService := service.NewContactService(mockContactRepo, nil)

	_, err := contactService.Submit(context.Background(), service.SubmitContactInput{
		Name: "Jane", Email: "jane@example.com",
	})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
	mockContactRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContactService_Get_MarksUnreadAsRead(t *testing.T) {
	// Arrange: first admin view must persist the unread-to-read transition.
	mockContactRepo := new(mocks.ContactRepository)
	contactService := service.NewContactService(mockContactRepo, nil)
	ctx := context.Background()

	stored := &domain.Contact{ID: 20, Status: domain.ContactStatusUnread}
	mockContactRepo.On("FindByID", ctx, uint(20)).Return(stored, nil).Once()
	mockContactRepo.On("Save", ctx, mock.MatchedBy(func(c *domain.Contact) bool {
		return c.ID == 20 && c.Status == domain.ContactStatusRead
	})).Return(nil).Once()

	// Act
	contact, err := contactService.Get(ctx, 20)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, domain.ContactStatusRead, contact.Status)
	mockContactRepo.AssertExpectations(t)
}

func TestContactService_Get_AlreadyReadIsNotRewritten(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	contactService := service.NewContactService(mockContactRepo, nil)
	ctx := context.Background()

	stored := &domain.Contact{ID: 21, Status: domain.ContactStatusReplied}
	mockContactRepo.On("FindByID", ctx, uint(21)).Return(stored, nil).Once()

	contact, err := contactService.Get(ctx, 21)

	assert.NoError(t, err)
	assert.Equal(t, domain.ContactStatusReplied, contact.Status)
	mockContactRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContactService_Update_RejectsUnknownStatus(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	contactService := service.NewContactService(mockContactRepo, nil)

	_, err := contactService.Update(context.Background(), 20, service.UpdateContactInput{Status: "archived"})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
	mockContactRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestContactService_Update_StatusMayMoveBackwards(t *testing.T) {
	// The workflow is free-form: replied back to unread is allowed.
	mockContactRepo := new(mocks.ContactRepository)
	contactService := service.NewContactService(mockContactRepo, nil)
	ctx := context.Background()

	stored := &domain.Contact{ID: 22, Status: domain.ContactStatusReplied, Response: "done"}
	mockContactRepo.On("FindByID", ctx, uint(22)).Return(stored, nil).Once()
	mockContactRepo.On("Save", ctx, mock.MatchedBy(func(c *domain.Contact) bool {
		return c.Status == domain.ContactStatusUnread && c.Response == "done"
	})).Return(nil).Once()

	contact, err := contactService.Update(ctx, 22, service.UpdateContactInput{Status: domain.ContactStatusUnread})

	assert.NoError(t, err)
	assert.Equal(t, domain.ContactStatusUnread, contact.Status)
	mockContactRepo.AssertExpectations(t)
}

func TestContactService_List_RejectsUnknownStatusFilter(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	contactService := service.NewContactService(mockContactRepo, nil)

	_, _, err := contactService.List(context.Background(), service.ContactListQuery{Status: "starred"})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
	mockContactRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestContactService_Delete_NotFound(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	contactService := service.NewContactService(mockContactRepo, nil)
	ctx := context.Background()

	mockContactRepo.On("Delete", ctx, uint(404)).Return(repository.ErrContactNotFound).Once()

	err := contactService.Delete(ctx, 404)

	assert.ErrorIs(t, err, service.ErrContactNotFound)
	mockContactRepo.AssertExpectations(t)
}
