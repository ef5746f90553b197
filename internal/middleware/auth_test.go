package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/middleware"
	"github.com/Yashkhope01/Blog/internal/repository/mocks"
	"github.com/Yashkhope01/Blog/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newProtectedRouter wires Auth (and optionally RequireAdmin) in front of a
// probe handler that echoes the resolved identity.
func newProtectedRouter(t *testing.T, authService *service.AuthService, adminOnly bool) *gin.Engine {
	t.Helper()
	router := gin.New()
	handlers := []gin.HandlerFunc{middleware.Auth(authService)}
	if adminOnly {
		handlers = append(handlers, middleware.RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		require.True(t, ok, "identity must be present past the Auth middleware")
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
	})
	router.GET("/probe", handlers...)
	return router
}

func issueToken(t *testing.T, authService *service.AuthService, userRepo *mocks.UserRepository, user *domain.User, password string) string {
	t.Helper()
	userRepo.On("FindByEmail", context.Background(), user.Email).Return(user, nil).Once()
	_, token, err := authService.Login(context.Background(), user.Email, password)
	require.NoError(t, err)
	return token
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService, err := service.NewAuthService(userRepo, "secret", 1)
	require.NoError(t, err)
	router := newProtectedRouter(t, authService, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header is required")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService, err := service.NewAuthService(userRepo, "secret", 1)
	require.NoError(t, err)
	router := newProtectedRouter(t, authService, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token format")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService, err := service.NewAuthService(userRepo, "secret", 1)
	require.NoError(t, err)
	router := newProtectedRouter(t, authService, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not.a.real.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService, err := service.NewAuthService(userRepo, "secret", 1)
	require.NoError(t, err)

	user := &domain.User{ID: 8, Username: "alice", Email: "alice@example.com", Password: hashOf(t, "pass123"), Role: domain.RoleUser}
	token := issueToken(t, authService, userRepo, user, "pass123")
	userRepo.On("FindByID", context.Background(), uint(8)).Return(user, nil).Once()

	router := newProtectedRouter(t, authService, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":8`)
	userRepo.AssertExpectations(t)
}

func TestRequireAdmin_RejectsRegularUser(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService, err := service.NewAuthService(userRepo, "secret", 1)
	require.NoError(t, err)

	user := &domain.User{ID: 8, Username: "alice", Email: "alice@example.com", Password: hashOf(t, "pass123"), Role: domain.RoleUser}
	token := issueToken(t, authService, userRepo, user, "pass123")
	userRepo.On("FindByID", context.Background(), uint(8)).Return(user, nil).Once()

	router := newProtectedRouter(t, authService, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService, err := service.NewAuthService(userRepo, "secret", 1)
	require.NoError(t, err)

	admin := &domain.User{ID: 1, Username: "root", Email: "root@example.com", Password: hashOf(t, "pass123"), Role: domain.RoleAdmin}
	token := issueToken(t, authService, userRepo, admin, "pass123")
	userRepo.On("FindByID", context.Background(), uint(1)).Return(admin, nil).Once()

	router := newProtectedRouter(t, authService, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
