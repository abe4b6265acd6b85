package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/handler/http/dto"
	"github.com/bloghub/bloghub/internal/handler/http/mocks"
)

func newUserRouter(mock *mocks.MockUserUsecase) *gin.Engine {
	handler := NewUserHandler(mock)
	router := gin.New()
	router.POST("/auth/signup", handler.Signup)
	router.POST("/auth/login", handler.Login)
	router.GET("/me", withCaller(testCaller()), handler.GetCurrentUser)
	return router
}

func TestSignup_Success(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodPost, "/auth/signup", gin.H{
		"username": "newuser",
		"email":    "new@example.com",
		"password": "Password1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "newuser", resp.Username)
	assert.Equal(t, string(entity.UserRoleUser), resp.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestSignup_InvalidPayload(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodPost, "/auth/signup", gin.H{
		"username": "x",
		"email":    "not-an-email",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_DuplicateUser(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.ShouldFailRegister = true
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodPost, "/auth/signup", gin.H{
		"username": "taken",
		"email":    "taken@example.com",
		"password": "Password1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodPost, "/auth/login", gin.H{
		"username": "testuser",
		"password": "Password1",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock_access_token", resp.AccessToken)
	assert.Equal(t, "testuser", resp.User.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.ShouldFailLogin = true
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodPost, "/auth/login", gin.H{
		"username": "testuser",
		"password": "WrongPass1",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogin_StoreFailure(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.ShouldFailLoginInternal = true
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodPost, "/auth/login", gin.H{
		"username": "testuser",
		"password": "Password1",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
	assert.NotContains(t, w.Body.String(), "Invalid credentials")
}

func TestGetCurrentUser_Success(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodGet, "/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.ID)
}

func TestGetCurrentUser_MissingUser(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.ShouldFailGetByID = true
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodGet, "/me", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCurrentUser_StoreFailure(t *testing.T) {
	mock := mocks.NewMockUserUsecase()
	mock.ShouldFailGetByIDInternal = true
	router := newUserRouter(mock)

	w := performRequest(router, http.MethodGet, "/me", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
}
