package contract

import (
	"context"

	"github.com/bloghub/bloghub/internal/domain/entity"
)

type IUserUseCase interface {
	// Register creates a new user with the default role. Username and email
	// are unique; violations surface as entity.ErrDuplicate.
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login verifies credentials and returns the user plus a signed access
	// token carrying the subject id and role.
	Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
}
