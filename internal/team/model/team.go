package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/weteam/classroom/pkg/idcodec"
)

// Team represents a team formed by a leader inside a course.
// Matches the teams table schema. Leader uniqueness is per course: the
// (course_id, leader_id) pair carries the unique index, so the same
// student may lead teams in different courses.
type Team struct {
	TeamID        uint      `gorm:"primaryKey;column:team_id;autoIncrement"                                       json:"team_id"`
	CourseID      uint      `gorm:"column:course_id;not null;uniqueIndex:idx_teams_course_leader"                json:"course_id"`
	LeaderID      string    `gorm:"column:leader_id;type:varchar(20);not null;uniqueIndex:idx_teams_course_leader" json:"leader_id"`
	TeamInfo      string    `gorm:"column:team_info;type:varchar(100);not null"                                  json:"team_info"`
	TeamMembersID string    `gorm:"column:team_members_id;type:text;not null"                                    json:"-"`
	MaxTeam       int       `gorm:"column:max_team;not null"                                                     json:"max_team"`
	AvailableTeam int       `gorm:"column:available_team;not null"                                               json:"available_team"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                    json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                    json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// MemberIDs returns the member identifiers as a decoded list.
func (t *Team) MemberIDs() []string {
	return idcodec.Decode(t.TeamMembersID)
}

// SetMemberIDs replaces the member identifiers.
func (t *Team) SetMemberIDs(ids []string) {
	t.TeamMembersID = idcodec.Encode(ids)
}
