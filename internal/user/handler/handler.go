// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userModel "github.com/weteam/classroom/internal/user/model"
	"github.com/weteam/classroom/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RegisterUser handles POST /add_user.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req userModel.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, userModel.ErrDuplicateStudentID) {
			errorResponse(c, "STUDENT_ID_EXISTS", "student_id already exists", http.StatusBadRequest)
			return
		}
		if errors.Is(err, userModel.ErrInvalidIsTeacher) {
			errorResponse(c, "INVALID_REQUEST", "is_teacher is neither 0 nor 1", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error registering user", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"user": resp,
	})
}

// GetUser handles GET /get_user.
func (h *Handler) GetUser(c *gin.Context) {
	studentID := c.Query("student_id")
	if studentID == "" {
		errorResponse(c, "INVALID_REQUEST", "student_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetByStudentID(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			notFoundResponse(c, "user not found")
			return
		}
		h.logger.Errorw("error getting user", "student_id", studentID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ModifyEnrollment handles POST /modify_attended_course.
func (h *Handler) ModifyEnrollment(c *gin.Context) {
	var req userModel.ModifyEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ModifyEnrollment(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			notFoundResponse(c, "user not found")
			return
		}
		h.logger.Errorw("error modifying enrollment", "student_id", req.StudentID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"user": resp,
	})
}
