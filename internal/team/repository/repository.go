// Package repository provides the data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/weteam/classroom/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists a new team. The store assigns team_id.
	Create(ctx context.Context, team *model.Team) error

	// GetByID finds a team by team_id.
	GetByID(ctx context.Context, teamID uint) (*model.Team, error)

	// ExistsByCourseAndLeader reports whether a team with the given
	// (course_id, leader_id) pair exists.
	ExistsByCourseAndLeader(ctx context.Context, courseID uint, leaderID string) (bool, error)

	// Update persists changes to an existing team.
	Update(ctx context.Context, team *model.Team) error

	// Delete removes an existing team record.
	Delete(ctx context.Context, team *model.Team) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new team.
func (r *repository) Create(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrDuplicateTeamLeader
		}
		r.logger.Errorw("Create database error", "course_id", team.CourseID, "leader_id", team.LeaderID, "error", err)
		return err
	}
	return nil
}

// GetByID finds a team by team_id.
func (r *repository) GetByID(ctx context.Context, teamID uint) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		r.logger.Errorw("GetByID database error", "team_id", teamID, "error", err)
		return nil, err
	}

	return &team, nil
}

// ExistsByCourseAndLeader reports whether a team with the given
// (course_id, leader_id) pair exists.
func (r *repository) ExistsByCourseAndLeader(ctx context.Context, courseID uint, leaderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("course_id = ? AND leader_id = ?", courseID, leaderID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("ExistsByCourseAndLeader database error", "course_id", courseID, "leader_id", leaderID, "error", err)
		return false, err
	}
	return count > 0, nil
}

// Update persists changes to an existing team.
func (r *repository) Update(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Save(team).Error
	if err != nil {
		r.logger.Errorw("Update database error", "team_id", team.TeamID, "error", err)
	}
	return err
}

// Delete removes an existing team record.
func (r *repository) Delete(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Delete(team).Error
	if err != nil {
		r.logger.Errorw("Delete database error", "team_id", team.TeamID, "error", err)
	}
	return err
}

// isDuplicateError checks if err is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
