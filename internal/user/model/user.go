package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/weteam/classroom/pkg/idcodec"
)

// User represents a platform user (student or teacher).
// Matches the users table schema.
type User struct {
	UserID            uint      `gorm:"primaryKey;column:user_id;autoIncrement"                       json:"user_id"`
	StudentID         string    `gorm:"column:student_id;type:varchar(20);uniqueIndex;not null"      json:"student_id"`
	Username          string    `gorm:"column:username;type:varchar(20);not null"                    json:"username"`
	IsTeacher         bool      `gorm:"column:is_teacher;type:boolean;not null"                      json:"is_teacher"`
	ProfilePhoto      string    `gorm:"column:profile_photo;type:text"                               json:"profile_photo"`
	AttendedCourseIDs string    `gorm:"column:attended_course_ids;type:text;not null"                json:"-"`
	CreatedAt         time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"    json:"-"`
	UpdatedAt         time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"    json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// CourseIDs returns the attended course identifiers as a decoded list.
func (u *User) CourseIDs() []string {
	return idcodec.Decode(u.AttendedCourseIDs)
}

// SetCourseIDs replaces the attended course identifiers.
func (u *User) SetCourseIDs(ids []string) {
	u.AttendedCourseIDs = idcodec.Encode(ids)
}
