// Package service provides the business logic layer for the user module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/weteam/classroom/internal/user/model"
	"github.com/weteam/classroom/internal/user/repository"
	"github.com/weteam/classroom/pkg/idcodec"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// Register creates a new user, enforcing student_id uniqueness.
	Register(ctx context.Context, req *model.RegisterUserRequest) (*model.UserResponse, error)

	// GetByStudentID returns a user by student_id.
	GetByStudentID(ctx context.Context, studentID string) (*model.UserResponse, error)

	// ModifyEnrollment replaces a user's attended course list.
	ModifyEnrollment(ctx context.Context, req *model.ModifyEnrollmentRequest) (*model.UserResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Register creates a new user, enforcing student_id uniqueness.
func (s *service) Register(ctx context.Context, req *model.RegisterUserRequest) (*model.UserResponse, error) {
	if req.IsTeacher == nil || (*req.IsTeacher != 0 && *req.IsTeacher != 1) {
		return nil, model.ErrInvalidIsTeacher
	}

	if _, err := s.repo.GetByStudentID(ctx, req.StudentID); err == nil {
		return nil, model.ErrDuplicateStudentID
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	user := &model.User{
		StudentID:         req.StudentID,
		Username:          req.Username,
		IsTeacher:         *req.IsTeacher == 1,
		ProfilePhoto:      req.ProfilePhoto,
		AttendedCourseIDs: idcodec.Encode(req.AttendedCourseIDs),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "student_id", user.StudentID, "is_teacher", user.IsTeacher)
	return model.NewUserResponse(user), nil
}

// GetByStudentID returns a user by student_id.
func (s *service) GetByStudentID(ctx context.Context, studentID string) (*model.UserResponse, error) {
	user, err := s.repo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return model.NewUserResponse(user), nil
}

// ModifyEnrollment replaces a user's attended course list. The new list
// is stored as-is, capacity bounds are never checked.
func (s *service) ModifyEnrollment(ctx context.Context, req *model.ModifyEnrollmentRequest) (*model.UserResponse, error) {
	user, err := s.repo.GetByStudentID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	user.SetCourseIDs(req.AttendedCourseIDs)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("enrollment modified", "student_id", user.StudentID, "course_count", len(req.AttendedCourseIDs))
	return model.NewUserResponse(user), nil
}
