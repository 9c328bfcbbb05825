package router

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "github.com/weteam/classroom/internal/course/model"
	teamModel "github.com/weteam/classroom/internal/team/model"
	teamRouter "github.com/weteam/classroom/internal/team/router"
	userModel "github.com/weteam/classroom/internal/user/model"
	userRouter "github.com/weteam/classroom/internal/user/router"
)

type testUser struct {
	UserID            uint      `gorm:"primaryKey;column:user_id;autoIncrement"`
	StudentID         string    `gorm:"column:student_id;uniqueIndex;not null"`
	Username          string    `gorm:"column:username;not null"`
	IsTeacher         bool      `gorm:"column:is_teacher;not null"`
	ProfilePhoto      string    `gorm:"column:profile_photo"`
	AttendedCourseIDs string    `gorm:"column:attended_course_ids;not null"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (testUser) TableName() string { return "users" }

type testTeam struct {
	TeamID        uint      `gorm:"primaryKey;column:team_id;autoIncrement"`
	CourseID      uint      `gorm:"column:course_id;not null;uniqueIndex:idx_teams_course_leader"`
	LeaderID      string    `gorm:"column:leader_id;not null;uniqueIndex:idx_teams_course_leader"`
	TeamInfo      string    `gorm:"column:team_info;not null"`
	TeamMembersID string    `gorm:"column:team_members_id;not null"`
	MaxTeam       int       `gorm:"column:max_team;not null"`
	AvailableTeam int       `gorm:"column:available_team;not null"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (testTeam) TableName() string { return "teams" }

type testCourse struct {
	CourseID   uint      `gorm:"primaryKey;column:course_id;autoIncrement"`
	TeacherID  uint      `gorm:"column:teacher_id;not null;uniqueIndex:idx_courses_teacher_name_time"`
	TeamIDs    string    `gorm:"column:team_ids;not null"`
	StudentIDs string    `gorm:"column:student_ids;not null"`
	CourseInfo string    `gorm:"column:course_info;not null"`
	Name       string    `gorm:"column:name;not null;uniqueIndex:idx_courses_teacher_name_time"`
	CourseTime string    `gorm:"column:course_time;not null;uniqueIndex:idx_courses_teacher_name_time"`
	StartTime  string    `gorm:"column:start_time;not null"`
	EndTime    string    `gorm:"column:end_time;not null"`
	MaxTeam    int       `gorm:"column:max_team;not null"`
	MinTeam    int       `gorm:"column:min_team;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (testCourse) TableName() string { return "courses" }

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var sqlDB *sql.DB
	sqlDB, err = db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&testUser{}, &testTeam{}, &testCourse{})
	require.NoError(t, err)

	return db
}

func setupStack(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := setupIntegrationDB(t)
	r := gin.New()
	log := zap.NewNop().Sugar()

	RegisterRoutes(r, db, log)
	teamRouter.RegisterRoutes(r, db, log)
	userRouter.RegisterRoutes(r, db, log)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func intPtr(v int) *int {
	return &v
}

func TestIntegration_CourseLifecycle(t *testing.T) {
	r, _ := setupStack(t)

	// Create a course.
	w := doJSON(t, r, http.MethodPost, "/add_course", &courseModel.CreateCourseRequest{
		TeacherID:  1,
		Name:       "CS101",
		CourseTime: "Mon",
		CourseInfo: "intro",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same (teacher, name, time) triple is rejected.
	w = doJSON(t, r, http.MethodPost, "/add_course", &courseModel.CreateCourseRequest{
		TeacherID:  1,
		Name:       "CS101",
		CourseTime: "Mon",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Lookup by name and time works without course_id.
	w = doJSON(t, r, http.MethodGet, "/get_course?name=CS101&course_time=Mon", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var course courseModel.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Equal(t, "intro", course.CourseInfo)

	// Info modification is visible on the next read.
	w = doJSON(t, r, http.MethodPost, "/modify_course_info", &courseModel.ModifyCourseInfoRequest{
		CourseID:   course.CourseID,
		CourseInfo: "updated",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/get_course?course_id=%d", course.CourseID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Equal(t, "updated", course.CourseInfo)
}

func TestIntegration_TeamFormationAndDisband(t *testing.T) {
	r, _ := setupStack(t)

	// Team creation against a missing course fails.
	w := doJSON(t, r, http.MethodPost, "/add_team", &teamModel.CreateTeamRequest{
		CourseID: 424242,
		LeaderID: "2019001",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/add_course", &courseModel.CreateCourseRequest{
		TeacherID:  1,
		Name:       "CS101",
		CourseTime: "Mon",
		StudentIDs: map[string]int{
			"2019001": courseModel.StatusNoTeam,
			"2019002": courseModel.StatusNoTeam,
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]courseModel.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	courseID := created["course"].CourseID

	w = doJSON(t, r, http.MethodPost, "/add_team", &teamModel.CreateTeamRequest{
		CourseID:      courseID,
		LeaderID:      "2019001",
		TeamMembersID: []string{"2019002"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var teamResp map[string]teamModel.TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teamResp))
	teamID := teamResp["team"].TeamID

	// Second team with the same leader in the same course is rejected.
	w = doJSON(t, r, http.MethodPost, "/add_team", &teamModel.CreateTeamRequest{
		CourseID: courseID,
		LeaderID: "2019001",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Mark both students as teamed up and register the team on the course.
	w = doJSON(t, r, http.MethodPost, "/course_modify_student", &courseModel.ModifyStudentsRequest{
		CourseID: courseID,
		StudentIDs: map[string]int{
			"2019001": courseModel.StatusOnTeam,
			"2019002": courseModel.StatusOnTeam,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Disband and verify the cascade.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/delete_team?team_id=%d", teamID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/get_team?team_id=%d", teamID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/get_course?course_id=%d", courseID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var course courseModel.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Empty(t, course.TeamIDs)
	assert.Equal(t, courseModel.StatusNoTeam, course.StudentIDs["2019001"])
	assert.Equal(t, courseModel.StatusNoTeam, course.StudentIDs["2019002"])
}

func TestIntegration_DeleteCourseCascade(t *testing.T) {
	r, _ := setupStack(t)

	// Register a student first so the cascade can touch it.
	w := doJSON(t, r, http.MethodPost, "/add_user", &userModel.RegisterUserRequest{
		StudentID: "2019001",
		Username:  "alice",
		IsTeacher: intPtr(0),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/add_course", &courseModel.CreateCourseRequest{
		TeacherID:  1,
		Name:       "CS101",
		CourseTime: "Mon",
		StudentIDs: map[string]int{"2019001": courseModel.StatusNoTeam},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]courseModel.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	courseID := created["course"].CourseID

	// Enroll the student in the course.
	w = doJSON(t, r, http.MethodPost, "/modify_attended_course", &userModel.ModifyEnrollmentRequest{
		StudentID:         "2019001",
		AttendedCourseIDs: []string{fmt.Sprintf("%d", courseID)},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A team inside the course.
	w = doJSON(t, r, http.MethodPost, "/add_team", &teamModel.CreateTeamRequest{
		CourseID: courseID,
		LeaderID: "2019001",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var teamResp map[string]teamModel.TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teamResp))
	teamID := teamResp["team"].TeamID

	// Delete the course.
	w = doJSON(t, r, http.MethodPost, "/delete_course", &courseModel.DeleteCourseRequest{CourseID: courseID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/get_course?course_id=%d", courseID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/get_team?team_id=%d", teamID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/get_user?student_id=2019001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var u userModel.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Empty(t, u.AttendedCourseIDs)
}
