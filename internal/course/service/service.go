// Package service provides the business logic layer for the course module.
//
// DeleteCourse is one of the two cascading operations in the system: it
// removes the course, every team the course owns, and the course's id
// from every enrolled user's attended list, all inside one transaction.
package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	courseModel "github.com/weteam/classroom/internal/course/model"
	courseRepo "github.com/weteam/classroom/internal/course/repository"
	teamModel "github.com/weteam/classroom/internal/team/model"
	teamRepo "github.com/weteam/classroom/internal/team/repository"
	userModel "github.com/weteam/classroom/internal/user/model"
	userRepo "github.com/weteam/classroom/internal/user/repository"
	"github.com/weteam/classroom/pkg/idcodec"
)

// Service defines the interface for course business logic operations.
type Service interface {
	// Create creates a new course, enforcing uniqueness of the
	// (teacher_id, name, course_time) triple.
	Create(ctx context.Context, req *courseModel.CreateCourseRequest) (*courseModel.CourseResponse, error)

	// Get returns a course by course_id, or by (name, course_time)
	// when courseID is nil.
	Get(ctx context.Context, courseID *uint, name, courseTime string) (*courseModel.CourseResponse, error)

	// ModifyInfo replaces a course's info text.
	ModifyInfo(ctx context.Context, req *courseModel.ModifyCourseInfoRequest) (*courseModel.CourseResponse, error)

	// ModifyStudents replaces a course's student roster.
	ModifyStudents(ctx context.Context, req *courseModel.ModifyStudentsRequest) (*courseModel.CourseResponse, error)

	// Delete removes a course and cascades into its teams and
	// enrolled users atomically.
	Delete(ctx context.Context, courseID uint) error
}

type service struct {
	repo   courseRepo.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new course service instance.
func New(repo courseRepo.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// Create creates a new course, enforcing uniqueness of the
// (teacher_id, name, course_time) triple.
func (s *service) Create(ctx context.Context, req *courseModel.CreateCourseRequest) (*courseModel.CourseResponse, error) {
	exists, err := s.repo.ExistsByTriple(ctx, req.TeacherID, req.Name, req.CourseTime)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, courseModel.ErrDuplicateCourse
	}

	course := &courseModel.Course{
		TeacherID:  req.TeacherID,
		TeamIDs:    idcodec.Encode(req.TeamIDs),
		StudentIDs: idcodec.EncodeRoster(req.StudentIDs),
		CourseInfo: req.CourseInfo,
		Name:       req.Name,
		CourseTime: req.CourseTime,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		MaxTeam:    req.MaxTeam,
		MinTeam:    req.MinTeam,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Infow("course created", "course_id", course.CourseID, "teacher_id", course.TeacherID, "name", course.Name)
	return courseModel.NewCourseResponse(course)
}

// Get returns a course by course_id, or by (name, course_time) when
// courseID is nil.
func (s *service) Get(ctx context.Context, courseID *uint, name, courseTime string) (*courseModel.CourseResponse, error) {
	var course *courseModel.Course
	var err error

	if courseID != nil {
		course, err = s.repo.GetByID(ctx, *courseID)
	} else {
		course, err = s.repo.GetByNameAndTime(ctx, name, courseTime)
	}
	if err != nil {
		return nil, err
	}

	return courseModel.NewCourseResponse(course)
}

// ModifyInfo replaces a course's info text.
func (s *service) ModifyInfo(ctx context.Context, req *courseModel.ModifyCourseInfoRequest) (*courseModel.CourseResponse, error) {
	course, err := s.repo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	course.CourseInfo = req.CourseInfo
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}

	return courseModel.NewCourseResponse(course)
}

// ModifyStudents replaces a course's student roster. The new roster is
// stored as-is, capacity bounds are never checked.
func (s *service) ModifyStudents(ctx context.Context, req *courseModel.ModifyStudentsRequest) (*courseModel.CourseResponse, error) {
	course, err := s.repo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	course.SetRoster(req.StudentIDs)
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Infow("course roster modified", "course_id", course.CourseID, "student_count", len(req.StudentIDs))
	return courseModel.NewCourseResponse(course)
}

// Delete removes a course and cascades into its teams and enrolled
// users. The whole cascade runs in one transaction; a referenced team
// or user missing from the store is an integrity fault that is logged
// and skipped without aborting the cascade.
func (s *service) Delete(ctx context.Context, courseID uint) error {
	// The course read happens inside the transaction under a row lock,
	// so a concurrent cascade on the same course cannot interleave and
	// act on a stale team list or roster.
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCourses := courseRepo.New(tx, s.logger)
		txTeams := teamRepo.New(tx, s.logger)
		txUsers := userRepo.New(tx, s.logger)

		course, err := txCourses.GetByIDForUpdate(ctx, courseID)
		if err != nil {
			return err
		}

		roster, err := course.Roster()
		if err != nil {
			return err
		}

		// Delete every owned team. The course record goes away with
		// them, so there is no per-team cascade back into the course.
		for _, teamIDText := range course.TeamIDList() {
			teamID, parseErr := strconv.ParseUint(teamIDText, 10, 64)
			if parseErr != nil {
				s.logger.Warnw("skipping unparseable team id in course",
					"course_id", course.CourseID, "team_id", teamIDText)
				continue
			}

			team, getErr := txTeams.GetByID(ctx, uint(teamID))
			if getErr != nil {
				if errors.Is(getErr, teamModel.ErrTeamNotFound) {
					s.logger.Warnw("integrity fault: course references missing team",
						"course_id", course.CourseID, "team_id", teamID)
					continue
				}
				return getErr
			}
			if delErr := txTeams.Delete(ctx, team); delErr != nil {
				return delErr
			}
		}

		// Scrub this course from every enrolled user's attended list.
		courseIDText := strconv.FormatUint(uint64(course.CourseID), 10)
		for studentID := range roster {
			user, getErr := txUsers.GetByStudentID(ctx, studentID)
			if getErr != nil {
				if errors.Is(getErr, userModel.ErrUserNotFound) {
					s.logger.Warnw("integrity fault: course roster references missing user",
						"course_id", course.CourseID, "student_id", studentID)
					continue
				}
				return getErr
			}

			user.SetCourseIDs(idcodec.Remove(user.CourseIDs(), courseIDText))
			if updErr := txUsers.Update(ctx, user); updErr != nil {
				return updErr
			}
		}

		if delErr := txCourses.Delete(ctx, course); delErr != nil {
			return delErr
		}

		s.logger.Infow("course deleted", "course_id", course.CourseID,
			"teams_removed", len(course.TeamIDList()), "students_updated", len(roster))
		return nil
	})
}
