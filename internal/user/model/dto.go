// Package model provides domain models and DTOs for the user module.
package model

// RegisterUserRequest represents the request to register a new user.
// IsTeacher is a pointer so that an explicit 0 survives binding; any
// value outside {0, 1} is rejected by the service.
type RegisterUserRequest struct {
	StudentID         string   `json:"student_id" binding:"required"`
	Username          string   `json:"username" binding:"required"`
	IsTeacher         *int     `json:"is_teacher" binding:"required"`
	ProfilePhoto      string   `json:"profile_photo"`
	AttendedCourseIDs []string `json:"attended_course_ids"`
}

// ModifyEnrollmentRequest represents the request to replace a user's
// attended course list.
type ModifyEnrollmentRequest struct {
	StudentID         string   `json:"student_id" binding:"required"`
	AttendedCourseIDs []string `json:"attended_course_ids"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	UserID            uint     `json:"user_id"`
	StudentID         string   `json:"student_id"`
	Username          string   `json:"username"`
	IsTeacher         bool     `json:"is_teacher"`
	ProfilePhoto      string   `json:"profile_photo"`
	AttendedCourseIDs []string `json:"attended_course_ids"`
}

// NewUserResponse builds a UserResponse from a persisted user.
func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:            u.UserID,
		StudentID:         u.StudentID,
		Username:          u.Username,
		IsTeacher:         u.IsTeacher,
		ProfilePhoto:      u.ProfilePhoto,
		AttendedCourseIDs: u.CourseIDs(),
	}
}
