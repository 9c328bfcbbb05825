// Package repository provides the data access layer for the user module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/weteam/classroom/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create persists a new user. The store assigns user_id.
	Create(ctx context.Context, user *model.User) error

	// GetByStudentID finds a user by student_id.
	GetByStudentID(ctx context.Context, studentID string) (*model.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *model.User) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrDuplicateStudentID
		}
		r.logger.Errorw("Create database error", "student_id", user.StudentID, "error", err)
		return err
	}
	return nil
}

// GetByStudentID finds a user by student_id.
func (r *repository) GetByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByStudentID database error", "student_id", studentID, "error", err)
		return nil, err
	}

	return &user, nil
}

// Update persists changes to an existing user.
func (r *repository) Update(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	if err != nil {
		r.logger.Errorw("Update database error", "student_id", user.StudentID, "error", err)
	}
	return err
}

// isDuplicateError checks if err is a unique constraint violation.
// Covers both the postgres and sqlite phrasings.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
