// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/weteam/classroom/internal/user/handler"
	"github.com/weteam/classroom/internal/user/repository"
	"github.com/weteam/classroom/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/add_user", h.RegisterUser)
	r.GET("/get_user", h.GetUser)
	r.POST("/modify_attended_course", h.ModifyEnrollment)
}
