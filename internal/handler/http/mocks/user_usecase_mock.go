package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/bloghub/bloghub/internal/domain/entity"
	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// MockUserUsecase is a hand-rolled mock for handler tests. The Internal
// variants fail with an unclassified error, the way a store outage would.
type MockUserUsecase struct {
	ShouldFailRegister        bool
	ShouldFailLogin           bool
	ShouldFailLoginInternal   bool
	ShouldFailGetByID         bool
	ShouldFailGetByIDInternal bool
	User                      *entity.User
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		User: &entity.User{
			ID:        "user-1",
			Username:  "testuser",
			Email:     "test@example.com",
			Role:      entity.UserRoleUser,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, fmt.Errorf("%w: user with username %s", entity.ErrDuplicate, username)
	}
	u := *m.User
	u.Username = username
	u.Email = email
	return &u, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthenticated)
	}
	if m.ShouldFailLoginInternal {
		return nil, "", fmt.Errorf("store unavailable")
	}
	return m.User, "mock_access_token", nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, fmt.Errorf("%w: user", entity.ErrNotFound)
	}
	if m.ShouldFailGetByIDInternal {
		return nil, fmt.Errorf("store unavailable")
	}
	return m.User, nil
}
