// Package model provides domain models and DTOs for the team module.
package model

// CreateTeamRequest represents the request to form a team inside a course.
type CreateTeamRequest struct {
	CourseID      uint     `json:"course_id" binding:"required"`
	LeaderID      string   `json:"leader_id" binding:"required"`
	TeamInfo      string   `json:"team_info"`
	MaxTeam       int      `json:"max_team"`
	AvailableTeam int      `json:"available_team"`
	TeamMembersID []string `json:"team_members_id"`
}

// ModifyMembersRequest represents the request to replace a team's member list.
type ModifyMembersRequest struct {
	TeamID        uint     `json:"team_id" binding:"required"`
	TeamMembersID []string `json:"team_members_id"`
}

// TeamResponse represents a team in API responses.
type TeamResponse struct {
	TeamID        uint     `json:"team_id"`
	CourseID      uint     `json:"course_id"`
	LeaderID      string   `json:"leader_id"`
	TeamInfo      string   `json:"team_info"`
	TeamMembersID []string `json:"team_members_id"`
	MaxTeam       int      `json:"max_team"`
	AvailableTeam int      `json:"available_team"`
}

// NewTeamResponse builds a TeamResponse from a persisted team.
func NewTeamResponse(t *Team) *TeamResponse {
	return &TeamResponse{
		TeamID:        t.TeamID,
		CourseID:      t.CourseID,
		LeaderID:      t.LeaderID,
		TeamInfo:      t.TeamInfo,
		TeamMembersID: t.MemberIDs(),
		MaxTeam:       t.MaxTeam,
		AvailableTeam: t.AvailableTeam,
	}
}
