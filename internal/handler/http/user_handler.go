package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/handler/http/dto"
	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for the user handler to allow
// interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Signup(*gin.Context)
	Login(*gin.Context)
	GetCurrentUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Signup handles user registration
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, err := h.userUsecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Unknown account and wrong password share one message; anything
		// else is an internal failure and maps to its own status.
		if errors.Is(err, entity.ErrUnauthenticated) {
			ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		RespondError(c, err)
		return
	}

	response := dto.AuthResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	}

	SuccessHandler(c, http.StatusOK, response)
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), caller.UserID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
