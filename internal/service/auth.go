package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarlsons/chatcart-service/internal/models"
	"github.com/akarlsons/chatcart-service/internal/repository"
)

// minPasswordLength applies to signup and to the new-password path of
// profile updates alike.
const minPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrOldPasswordNeeded  = errors.New("old password is required")
	ErrUserNotFound       = errors.New("user not found")
)

// SignupInput carries the fields accepted at signup.
type SignupInput struct {
	FullName   string
	Email      string
	Password   string
	ProfilePic string
}

// ProfileUpdate carries the optional fields of a profile update. Nil fields
// keep their current value.
type ProfileUpdate struct {
	FullName    *string
	Email       *string
	ProfilePic  *string
	OldPassword string
	NewPassword string
}

// AuthService orchestrates signup, login and profile operations.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, tokens TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Signup creates a user and returns it along with a fresh session token.
// The duplicate check ahead of Create is advisory; the unique index on
// email settles concurrent signups, surfacing as ErrEmailExists.
func (s *authService) Signup(ctx context.Context, input SignupInput) (*models.User, string, error) {
	if len(input.Password) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: digest,
		ProfilePic:   input.ProfilePic,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailExists
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh session
// token. Unknown email and wrong password both yield ErrInvalidCredentials
// so callers cannot probe which accounts exist.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return user, token, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the supplied fields to the user record. Unsupplied
// fields keep their current values; the password is only touched when
// NewPassword is set and the old password verifies.
func (s *authService) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(ctx, *update.Email); err == nil {
			return nil, ErrEmailExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to check existing email: %w", err)
		}
	}

	fields := repository.UserUpdate{
		FullName:   update.FullName,
		Email:      update.Email,
		ProfilePic: update.ProfilePic,
	}

	if update.NewPassword != "" {
		if update.OldPassword == "" {
			return nil, ErrOldPasswordNeeded
		}
		if !s.hasher.Verify(update.OldPassword, user.PasswordHash) {
			return nil, ErrInvalidCredentials
		}
		if len(update.NewPassword) < minPasswordLength {
			return nil, ErrPasswordTooShort
		}
		digest, err := s.hasher.Hash(update.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields.PasswordHash = &digest
	}

	updated, err := s.userRepo.UpdateByID(ctx, userID, fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailExists
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		default:
			return nil, err
		}
	}

	return updated, nil
}
