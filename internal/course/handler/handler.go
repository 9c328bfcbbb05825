// Package handler provides HTTP handlers for course endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	courseModel "github.com/weteam/classroom/internal/course/model"
	"github.com/weteam/classroom/internal/course/service"
)

// Handler handles HTTP requests for course endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new course handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateCourse handles POST /add_course.
func (h *Handler) CreateCourse(c *gin.Context) {
	var req courseModel.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, courseModel.ErrDuplicateCourse) {
			errorResponse(c, "COURSE_EXISTS", "already have this class", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating course", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"course": resp,
	})
}

// GetCourse handles GET /get_course. Lookup is by course_id when
// present, otherwise by the (name, course_time) pair.
func (h *Handler) GetCourse(c *gin.Context) {
	var courseID *uint
	if raw := c.Query("course_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			errorResponse(c, "INVALID_REQUEST", "course_id must be an integer", http.StatusBadRequest)
			return
		}
		id := uint(parsed)
		courseID = &id
	}

	name := c.Query("name")
	courseTime := c.Query("course_time")
	if courseID == nil && (name == "" || courseTime == "") {
		errorResponse(c, "INVALID_REQUEST", "course_id or both name and course_time are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), courseID, name, courseTime)
	if err != nil {
		if errors.Is(err, courseModel.ErrCourseNotFound) {
			notFoundResponse(c, "course not found")
			return
		}
		h.logger.Errorw("error getting course", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ModifyCourseInfo handles POST /modify_course_info.
func (h *Handler) ModifyCourseInfo(c *gin.Context) {
	var req courseModel.ModifyCourseInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ModifyInfo(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, courseModel.ErrCourseNotFound) {
			notFoundResponse(c, "course not found")
			return
		}
		h.logger.Errorw("error modifying course info", "course_id", req.CourseID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ModifyStudents handles POST /course_modify_student.
func (h *Handler) ModifyStudents(c *gin.Context) {
	var req courseModel.ModifyStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ModifyStudents(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, courseModel.ErrCourseNotFound) {
			notFoundResponse(c, "course not found")
			return
		}
		h.logger.Errorw("error modifying course students", "course_id", req.CourseID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"course": resp,
	})
}

// DeleteCourse handles POST /delete_course.
func (h *Handler) DeleteCourse(c *gin.Context) {
	var req courseModel.DeleteCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.CourseID); err != nil {
		if errors.Is(err, courseModel.ErrCourseNotFound) {
			notFoundResponse(c, "course not found")
			return
		}
		h.logger.Errorw("error deleting course", "course_id", req.CourseID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
	})
}
