package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Yashkhope01/Blog/internal/domain"
	httpHandler "github.com/Yashkhope01/Blog/internal/handler/http"
	"github.com/Yashkhope01/Blog/internal/repository"
	"github.com/Yashkhope01/Blog/internal/repository/mocks"
	"github.com/Yashkhope01/Blog/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContactRouter(contactRepo repository.ContactRepository) *gin.Engine {
	handler := httpHandler.NewContactHandler(service.NewContactService(contactRepo, nil))
	router := gin.New()
	router.POST("/api/contact", handler.Submit)
	router.GET("/api/contact/:id", handler.Get)
	router.PUT("/api/contact/:id", handler.Update)
	router.DELETE("/api/contact/:id", handler.Delete)
	return router
}

func TestContactHandler_Submit_Success(t *testing.T) {
	// Arrange
	mockContactRepo := new(mocks.ContactRepository)
	mockContactRepo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Contact) bool {
		return c.Status == domain.ContactStatusUnread && c.Name == "Jane"
	})).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Contact).ID = 3 }).
		Return(nil).
		Once()
	router := newContactRouter(mockContactRepo)

	body := `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"A question"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	router.ServeHTTP(w, req)

	// Assert: the envelope carries success, message and the stored entity.
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    *domain.Contact `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Your message has been sent successfully!", resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, uint(3), resp.Data.ID)
	mockContactRepo.AssertExpectations(t)
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	router := newContactRouter(mockContactRepo)

	body := `{"name":"Jane","email":"not-an-email","subject":"Hi","message":"m"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	mockContactRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	mockContactRepo.On("FindByID", mock.Anything, uint(404)).
		Return(nil, repository.ErrContactNotFound).
		Once()
	router := newContactRouter(mockContactRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/contact/404", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestContactHandler_Get_BadID(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	router := newContactRouter(mockContactRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/contact/abc", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockContactRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestContactHandler_Update_RejectsUnknownStatus(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	router := newContactRouter(mockContactRepo)

	body := `{"status":"archived"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/contact/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	// The binding enum stops it before the service is reached.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockContactRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestContactHandler_Delete_Success(t *testing.T) {
	mockContactRepo := new(mocks.ContactRepository)
	mockContactRepo.On("Delete", mock.Anything, uint(2)).Return(nil).Once()
	router := newContactRouter(mockContactRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/contact/2", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contact message deleted")
	mockContactRepo.AssertExpectations(t)
}
