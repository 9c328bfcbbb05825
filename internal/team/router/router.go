// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	courseRepo "github.com/weteam/classroom/internal/course/repository"
	"github.com/weteam/classroom/internal/team/handler"
	"github.com/weteam/classroom/internal/team/repository"
	"github.com/weteam/classroom/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	teams := repository.New(db, logger)
	courses := courseRepo.New(db, logger)
	svc := service.New(teams, courses, db, logger)
	h := handler.New(svc, logger)

	r.POST("/add_team", h.CreateTeam)
	r.GET("/get_team", h.GetTeam)
	r.DELETE("/delete_team", h.DisbandTeam)
	r.POST("/modify_team", h.ModifyMembers)
}
