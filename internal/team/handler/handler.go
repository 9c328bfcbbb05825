// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	courseModel "github.com/weteam/classroom/internal/course/model"
	teamModel "github.com/weteam/classroom/internal/team/model"
	"github.com/weteam/classroom/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /add_team.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, courseModel.ErrCourseNotFound) {
			errorResponse(c, "COURSE_NOT_FOUND", "no such course", http.StatusBadRequest)
			return
		}
		if errors.Is(err, teamModel.ErrDuplicateTeamLeader) {
			errorResponse(c, "TEAM_LEADER_EXISTS", "already have a team with this leader", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating team", "course_id", req.CourseID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team": resp,
	})
}

// GetTeam handles GET /get_team.
func (h *Handler) GetTeam(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DisbandTeam handles DELETE /delete_team.
func (h *Handler) DisbandTeam(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	if err := h.service.Disband(c.Request.Context(), teamID); err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		if errors.Is(err, courseModel.ErrCourseNotFound) {
			errorResponse(c, "COURSE_NOT_FOUND", "cannot find a corresponding course", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error disbanding team", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
	})
}

// ModifyMembers handles POST /modify_team.
func (h *Handler) ModifyMembers(c *gin.Context) {
	var req teamModel.ModifyMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ModifyMembers(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error modifying team members", "team_id", req.TeamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"team": resp,
	})
}

// parseTeamID reads the team_id query parameter, writing the error
// response itself when the parameter is missing or malformed.
func parseTeamID(c *gin.Context) (uint, bool) {
	raw := c.Query("team_id")
	if raw == "" {
		errorResponse(c, "INVALID_REQUEST", "team_id parameter is required", http.StatusBadRequest)
		return 0, false
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_id must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return uint(parsed), true
}
