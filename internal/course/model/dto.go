// Package model provides domain models and DTOs for the course module.
package model

// CreateCourseRequest represents the request to create a course.
type CreateCourseRequest struct {
	TeacherID  uint           `json:"teacher_id" binding:"required"`
	CourseInfo string         `json:"course_info"`
	Name       string         `json:"name" binding:"required"`
	CourseTime string         `json:"course_time" binding:"required"`
	StartTime  string         `json:"start_time"`
	EndTime    string         `json:"end_time"`
	MaxTeam    int            `json:"max_team"`
	MinTeam    int            `json:"min_team"`
	StudentIDs map[string]int `json:"student_ids"`
	TeamIDs    []string       `json:"team_ids"`
}

// ModifyCourseInfoRequest represents the request to replace a course's info text.
type ModifyCourseInfoRequest struct {
	CourseID   uint   `json:"course_id" binding:"required"`
	CourseInfo string `json:"course_info"`
}

// ModifyStudentsRequest represents the request to replace a course's
// student roster.
type ModifyStudentsRequest struct {
	CourseID   uint           `json:"course_id" binding:"required"`
	StudentIDs map[string]int `json:"student_ids"`
}

// DeleteCourseRequest represents the request to delete a course and
// cascade into its teams and enrolled users.
type DeleteCourseRequest struct {
	CourseID uint `json:"course_id" binding:"required"`
}

// CourseResponse represents a course in API responses.
type CourseResponse struct {
	CourseID   uint           `json:"course_id"`
	TeacherID  uint           `json:"teacher_id"`
	TeamIDs    []string       `json:"team_ids"`
	StudentIDs map[string]int `json:"student_ids"`
	CourseInfo string         `json:"course_info"`
	Name       string         `json:"name"`
	CourseTime string         `json:"course_time"`
	StartTime  string         `json:"start_time"`
	EndTime    string         `json:"end_time"`
	MaxTeam    int            `json:"max_team"`
	MinTeam    int            `json:"min_team"`
}

// NewCourseResponse builds a CourseResponse from a persisted course.
// A roster that fails to decode is a stored-data fault surfaced as an error.
func NewCourseResponse(c *Course) (*CourseResponse, error) {
	roster, err := c.Roster()
	if err != nil {
		return nil, err
	}
	return &CourseResponse{
		CourseID:   c.CourseID,
		TeacherID:  c.TeacherID,
		TeamIDs:    c.TeamIDList(),
		StudentIDs: roster,
		CourseInfo: c.CourseInfo,
		Name:       c.Name,
		CourseTime: c.CourseTime,
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
		MaxTeam:    c.MaxTeam,
		MinTeam:    c.MinTeam,
	}, nil
}
