// Package repository provides the data access layer for the chatcart service.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/akarlsons/chatcart-service/internal/models"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert or update would violate
	// the unique index on users.email.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserUpdate describes a partial update to a user record. Nil fields are
// left untouched, so presence and absence stay distinguishable.
type UserUpdate struct {
	FullName     *string
	Email        *string
	ProfilePic   *string
	PasswordHash *string
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateByID(ctx context.Context, id int64, update UserUpdate) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id int64, update UserUpdate) (*models.User, error) {
	fields := map[string]interface{}{}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.ProfilePic != nil {
		fields["profile_pic"] = *update.ProfilePic
	}
	if update.PasswordHash != nil {
		fields["password_hash"] = *update.PasswordHash
	}

	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			if isUniqueViolation(result.Error) {
				return nil, ErrDuplicateEmail
			}
			return nil, fmt.Errorf("failed to update user id %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// isUniqueViolation reports whether err is a unique-constraint violation,
// either as translated by GORM or as a raw Postgres error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
