package usecase

import (
	"github.com/bloghub/bloghub/internal/domain/entity"
)

// JWTService issues and verifies the signed bearer credentials used by the
// access control gate.
type JWTService interface {
	GenerateAccessToken(userID string, role entity.UserRole) (string, error)
	ParseAccessToken(tokenStr string) (*entity.Claims, error)
}
