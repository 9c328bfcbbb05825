// Package router provides course module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/weteam/classroom/internal/course/handler"
	"github.com/weteam/classroom/internal/course/repository"
	"github.com/weteam/classroom/internal/course/service"
)

// RegisterRoutes registers course module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/add_course", h.CreateCourse)
	r.GET("/get_course", h.GetCourse)
	r.POST("/modify_course_info", h.ModifyCourseInfo)
	r.POST("/course_modify_student", h.ModifyStudents)
	r.POST("/delete_course", h.DeleteCourse)
}
