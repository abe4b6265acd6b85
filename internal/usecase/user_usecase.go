package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bloghub/bloghub/internal/domain/contract"
	"github.com/bloghub/bloghub/internal/domain/entity"
	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// UserUsecase implements registration, login and user lookup.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check that UserUsecase implements IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user signup. New users always get the default role;
// there is no endpoint that changes a role afterwards.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entity.ErrValidation)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with email %s", entity.ErrDuplicate, email)
	}

	existing, err = uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with username %s", entity.ErrDuplicate, username)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues an access token. The same error is
// returned for an unknown account and a wrong password.
func (uc *UserUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, string, error) {
	var user *entity.User
	var err error

	if uc.validator.ValidateEmail(usernameOrEmail) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, usernameOrEmail)
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthenticated)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", fmt.Errorf("failed to login: %w", err)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthenticated)
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, accessToken, nil
}

// GetUserByID retrieves a user by id.
func (uc *UserUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
