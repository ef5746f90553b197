package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
	"github.com/Yashkhope01/Blog/internal/repository/mocks"
	"github.com/Yashkhope01/Blog/internal/tasks"
	"github.com/Yashkhope01/Blog/internal/worker"
)

func TestContactNotificationHandler_Success(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	handler := worker.NewContactNotificationHandler(mockContactRepo)

	task, err := tasks.NewContactNotificationTask(4, "jane@example.com", "Hi")
	require.NoError(t, err)
	mockContactRepo.On("FindByID", mock.Anything, uint(4)).
		Return(&domain.Contact{ID: 4, Email: "jane@example.com", Subject: "Hi", Status: domain.ContactStatusUnread}, nil).
		Once()

	err = handler.ProcessTask(context.Background(), task)

	assert.NoError(t, err)
	mockContactRepo.AssertExpectations(t)
}

func TestContactNotificationHandler_VanishedContactIsNotRetried(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	handler := worker.NewContactNotificationHandler(mockContactRepo)

	task, err := tasks.NewContactNotificationTask(5, "jane@example.com", "Hi")
	require.NoError(t, err)
	mockContactRepo.On("FindByID", mock.Anything, uint(5)).
		Return(nil, repository.ErrContactNotFound).
		Once()

	err = handler.ProcessTask(context.Background(), task)

	assert.NoError(t, err, "a deleted message must not trigger retries")
	mockContactRepo.AssertExpectations(t)
}

func TestContactNotificationHandler_GarbagePayloadSkipsRetry(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	handler := worker.NewContactNotificationHandler(mockContactRepo)

	task := asynq.NewTask(tasks.TypeContactNotification, []byte("not json"))

	err := handler.ProcessTask(context.Background(), task)

	assert.ErrorIs(t, err, asynq.SkipRetry)
	mockContactRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestContactNotificationHandler_TransientErrorIsRetried(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	handler := worker.NewContactNotificationHandler(mockContactRepo)

	task, err := tasks.NewContactNotificationTask(6, "jane@example.com", "Hi")
	require.NoError(t, err)
	mockContactRepo.On("FindByID", mock.Anything, uint(6)).
		Return(nil, errors.New("connection refused")).
		Once()

	err = handler.ProcessTask(context.Background(), task)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
	mockContactRepo.AssertExpectations(t)
}
