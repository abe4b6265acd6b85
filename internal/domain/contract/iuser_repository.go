package contract

import (
	"context"

	"github.com/bloghub/bloghub/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUsersByIDs retrieves the users for a set of ids in one query.
	// Missing ids are skipped, not errors.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
}
