package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/weteam/classroom/pkg/idcodec"
)

// Roster status flags for students enrolled in a course.
const (
	// StatusNoTeam marks a student not currently on any team.
	StatusNoTeam = 0
	// StatusOnTeam marks a student that belongs to a team.
	StatusOnTeam = 1
)

// Course represents a course owned by a teacher.
// Matches the courses table schema. TeamIDs holds the encoded list of
// owned team identifiers, StudentIDs the encoded student->status roster;
// MaxTeam and MinTeam are advisory bounds, stored but never enforced.
type Course struct {
	CourseID   uint      `gorm:"primaryKey;column:course_id;autoIncrement"                                                   json:"course_id"`
	TeacherID  uint      `gorm:"column:teacher_id;not null;uniqueIndex:idx_courses_teacher_name_time"                        json:"teacher_id"`
	TeamIDs    string    `gorm:"column:team_ids;type:text;not null"                                                          json:"-"`
	StudentIDs string    `gorm:"column:student_ids;type:text;not null"                                                       json:"-"`
	CourseInfo string    `gorm:"column:course_info;type:varchar(200);not null"                                               json:"course_info"`
	Name       string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_courses_teacher_name_time"            json:"name"`
	CourseTime string    `gorm:"column:course_time;type:varchar(100);not null;uniqueIndex:idx_courses_teacher_name_time"     json:"course_time"`
	StartTime  string    `gorm:"column:start_time;type:varchar(100);not null"                                                json:"start_time"`
	EndTime    string    `gorm:"column:end_time;type:varchar(100);not null"                                                  json:"end_time"`
	MaxTeam    int       `gorm:"column:max_team;not null"                                                                    json:"max_team"`
	MinTeam    int       `gorm:"column:min_team;not null"                                                                    json:"min_team"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                                   json:"-"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                                   json:"-"`
}

// TableName specifies the table name for GORM.
func (Course) TableName() string {
	return "courses"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (c *Course) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return nil
}

// TeamIDList returns the owned team identifiers as a decoded list.
func (c *Course) TeamIDList() []string {
	return idcodec.Decode(c.TeamIDs)
}

// SetTeamIDList replaces the owned team identifiers.
func (c *Course) SetTeamIDList(ids []string) {
	c.TeamIDs = idcodec.Encode(ids)
}

// Roster returns the decoded student->status mapping.
func (c *Course) Roster() (map[string]int, error) {
	return idcodec.DecodeRoster(c.StudentIDs)
}

// SetRoster replaces the student->status mapping.
func (c *Course) SetRoster(roster map[string]int) {
	c.StudentIDs = idcodec.EncodeRoster(roster)
}
