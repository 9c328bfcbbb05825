// Package service provides the business logic layer for the team module.
//
// Disband is one of the two cascading operations in the system: it
// deletes the team, removes its id from the owning course's team list,
// and resets every member's and the leader's roster status, all inside
// one transaction.
package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	courseModel "github.com/weteam/classroom/internal/course/model"
	courseRepo "github.com/weteam/classroom/internal/course/repository"
	teamModel "github.com/weteam/classroom/internal/team/model"
	teamRepo "github.com/weteam/classroom/internal/team/repository"
	"github.com/weteam/classroom/pkg/idcodec"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Create forms a new team inside an existing course, enforcing
	// one team per (course_id, leader_id) pair.
	Create(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// Get returns a team by team_id.
	Get(ctx context.Context, teamID uint) (*teamModel.TeamResponse, error)

	// Disband deletes a team and updates the owning course atomically.
	Disband(ctx context.Context, teamID uint) error

	// ModifyMembers replaces a team's member list.
	ModifyMembers(ctx context.Context, req *teamModel.ModifyMembersRequest) (*teamModel.TeamResponse, error)
}

type service struct {
	teams   teamRepo.Repository
	courses courseRepo.Repository
	db      *gorm.DB
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(teams teamRepo.Repository, courses courseRepo.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		teams:   teams,
		courses: courses,
		db:      db,
		logger:  logger,
	}
}

// Create forms a new team inside an existing course. The team is
// persisted only when the course exists and no team with the same
// (course_id, leader_id) pair does.
func (s *service) Create(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	if _, err := s.courses.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	exists, err := s.teams.ExistsByCourseAndLeader(ctx, req.CourseID, req.LeaderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, teamModel.ErrDuplicateTeamLeader
	}

	team := &teamModel.Team{
		CourseID:      req.CourseID,
		LeaderID:      req.LeaderID,
		TeamInfo:      req.TeamInfo,
		TeamMembersID: idcodec.Encode(req.TeamMembersID),
		MaxTeam:       req.MaxTeam,
		AvailableTeam: req.AvailableTeam,
	}

	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.TeamID, "course_id", team.CourseID, "leader_id", team.LeaderID)
	return teamModel.NewTeamResponse(team), nil
}

// Get returns a team by team_id.
func (s *service) Get(ctx context.Context, teamID uint) (*teamModel.TeamResponse, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return teamModel.NewTeamResponse(team), nil
}

// Disband deletes a team and updates the owning course. The course's
// team list loses this team's id and every member's and the leader's
// roster status is reset to StatusNoTeam; the course update and the
// team delete commit together or not at all. A missing owning course is
// an integrity fault reported as ErrCourseNotFound rather than a crash.
func (s *service) Disband(ctx context.Context, teamID uint) error {
	// All reads and the derived course state live inside the
	// transaction. The row lock on the course serializes concurrent
	// cascades touching it, so neither can write a team list or roster
	// derived from a stale read.
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCourses := courseRepo.New(tx, s.logger)
		txTeams := teamRepo.New(tx, s.logger)

		team, err := txTeams.GetByID(ctx, teamID)
		if err != nil {
			return err
		}

		course, err := txCourses.GetByIDForUpdate(ctx, team.CourseID)
		if err != nil {
			return err
		}

		roster, err := course.Roster()
		if err != nil {
			return err
		}

		for _, memberID := range team.MemberIDs() {
			roster[memberID] = courseModel.StatusNoTeam
		}
		roster[team.LeaderID] = courseModel.StatusNoTeam

		course.SetRoster(roster)
		teamIDText := strconv.FormatUint(uint64(team.TeamID), 10)
		course.SetTeamIDList(idcodec.Remove(course.TeamIDList(), teamIDText))

		if updErr := txCourses.Update(ctx, course); updErr != nil {
			return updErr
		}
		if delErr := txTeams.Delete(ctx, team); delErr != nil {
			return delErr
		}

		s.logger.Infow("team disbanded", "team_id", team.TeamID, "course_id", course.CourseID)
		return nil
	})
}

// ModifyMembers replaces a team's member list. The new list is stored
// as-is, capacity counters are never checked.
func (s *service) ModifyMembers(ctx context.Context, req *teamModel.ModifyMembersRequest) (*teamModel.TeamResponse, error) {
	team, err := s.teams.GetByID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	team.SetMemberIDs(req.TeamMembersID)
	if err := s.teams.Update(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Infow("team members modified", "team_id", team.TeamID, "member_count", len(req.TeamMembersID))
	return teamModel.NewTeamResponse(team), nil
}
