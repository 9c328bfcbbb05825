// Package repository provides the data access layer for the course module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/weteam/classroom/internal/course/model"
)

// Repository defines the interface for course data access operations.
type Repository interface {
	// Create persists a new course. The store assigns course_id.
	Create(ctx context.Context, course *model.Course) error

	// GetByID finds a course by course_id.
	GetByID(ctx context.Context, courseID uint) (*model.Course, error)

	// GetByIDForUpdate finds a course by course_id and takes a row
	// lock on it for the duration of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, courseID uint) (*model.Course, error)

	// GetByNameAndTime finds a course by its (name, course_time) pair.
	GetByNameAndTime(ctx context.Context, name, courseTime string) (*model.Course, error)

	// ExistsByTriple reports whether a course with the given
	// (teacher_id, name, course_time) triple exists.
	ExistsByTriple(ctx context.Context, teacherID uint, name, courseTime string) (bool, error)

	// Update persists changes to an existing course.
	Update(ctx context.Context, course *model.Course) error

	// Delete removes an existing course record.
	Delete(ctx context.Context, course *model.Course) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new course repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new course.
func (r *repository) Create(ctx context.Context, course *model.Course) error {
	err := r.db.WithContext(ctx).Create(course).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrDuplicateCourse
		}
		r.logger.Errorw("Create database error", "name", course.Name, "error", err)
		return err
	}
	return nil
}

// GetByID finds a course by course_id.
func (r *repository) GetByID(ctx context.Context, courseID uint) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		First(&course).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCourseNotFound
		}
		r.logger.Errorw("GetByID database error", "course_id", courseID, "error", err)
		return nil, err
	}

	return &course, nil
}

// GetByIDForUpdate finds a course by course_id under SELECT FOR
// UPDATE. Concurrent cascades touching the same course serialize on
// this lock. The sqlite dialect used in tests drops the locking
// clause, its single writer gives the same ordering.
func (r *repository) GetByIDForUpdate(ctx context.Context, courseID uint) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("course_id = ?", courseID).
		First(&course).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCourseNotFound
		}
		r.logger.Errorw("GetByIDForUpdate database error", "course_id", courseID, "error", err)
		return nil, err
	}

	return &course, nil
}

// GetByNameAndTime finds a course by its (name, course_time) pair.
func (r *repository) GetByNameAndTime(ctx context.Context, name, courseTime string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("name = ? AND course_time = ?", name, courseTime).
		First(&course).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCourseNotFound
		}
		r.logger.Errorw("GetByNameAndTime database error", "name", name, "course_time", courseTime, "error", err)
		return nil, err
	}

	return &course, nil
}

// ExistsByTriple reports whether a course with the given
// (teacher_id, name, course_time) triple exists.
func (r *repository) ExistsByTriple(ctx context.Context, teacherID uint, name, courseTime string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("teacher_id = ? AND name = ? AND course_time = ?", teacherID, name, courseTime).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("ExistsByTriple database error", "teacher_id", teacherID, "name", name, "error", err)
		return false, err
	}
	return count > 0, nil
}

// Update persists changes to an existing course.
func (r *repository) Update(ctx context.Context, course *model.Course) error {
	err := r.db.WithContext(ctx).Save(course).Error
	if err != nil {
		r.logger.Errorw("Update database error", "course_id", course.CourseID, "error", err)
	}
	return err
}

// Delete removes an existing course record.
func (r *repository) Delete(ctx context.Context, course *model.Course) error {
	err := r.db.WithContext(ctx).Delete(course).Error
	if err != nil {
		r.logger.Errorw("Delete database error", "course_id", course.CourseID, "error", err)
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
