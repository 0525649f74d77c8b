package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cattery/internal/domain"
	"cattery/internal/handler"
	"cattery/internal/middleware"
	"cattery/internal/service"
	"cattery/mocks"
)

func newAuthRouter(authSvc *mocks.MockAuthService, userSvc *mocks.MockUserService) *gin.Engine {
	h := handler.NewAuthHandler(authSvc, userSvc)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	r.GET("/auth/me", middleware.AuthMiddleware(authSvc), h.Me)
	return r
}

func TestAuthHandler_Login_Success(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	r := newAuthRouter(authSvc, new(mocks.MockUserService))

	authSvc.On("Login", mock.Anything, service.LoginInput{
		Email:    "admin@cattery.test",
		Password: "password123",
	}).Return(&service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}, nil)

	w := serve(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "admin@cattery.test",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResponse(t, w).Success)
	authSvc.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	r := newAuthRouter(authSvc, new(mocks.MockUserService))

	authSvc.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	w := serve(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "admin@cattery.test",
		"password": "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	r := newAuthRouter(authSvc, new(mocks.MockUserService))

	w := serve(r, http.MethodPost, "/auth/login", map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
	authSvc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	r := newAuthRouter(authSvc, new(mocks.MockUserService))

	authSvc.On("RefreshToken", mock.Anything, "refresh-token").
		Return(&service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	w := serve(r, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "refresh-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	authSvc.AssertExpectations(t)
}

func TestAuthHandler_Me(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	userSvc := new(mocks.MockUserService)
	r := newAuthRouter(authSvc, userSvc)

	userID := uuid.New()
	authSvc.On("ValidateToken", "valid-token").Return(&service.Claims{
		UserID: userID,
		Email:  "admin@cattery.test",
		Role:   domain.RoleAdmin,
	}, nil)
	userSvc.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:       userID,
		Email:    "admin@cattery.test",
		FullName: "Admin",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}, nil)

	w := httptestGetWithToken(r, "/auth/me", "valid-token")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, userID.String(), data["id"])
	assert.NotContains(t, data, "password_hash")
}
