package router

import (
	"campus-core/internal/handler"
	"campus-core/internal/middleware"
	"campus-core/internal/repository"
	"campus-core/internal/service"

	"github.com/gin-gonic/gin"
)

// setupTeacherRoutes wires faculty CRUD — the source of the TeacherID the
// scheduling core assigns each course to.
func (r *Router) setupTeacherRoutes(rg *gin.RouterGroup) {
	teacherRepo := repository.NewTeacherRepository(r.db)
	userRepo := repository.NewUserRepository(r.db)

	teacherService := service.NewTeacherService(teacherRepo, userRepo, r.db, r.jwtManager)
	teacherHandler := handler.NewTeacherHandler(teacherService)

	teachers := rg.Group("/teachers")
	{
		teachers.GET("", teacherHandler.GetAll)
		teachers.GET("/:id", teacherHandler.GetByID)
		teachers.POST("", middleware.RequireAdmin(), teacherHandler.Create)
		teachers.PUT("/:id/availability", middleware.RequireAdmin(), teacherHandler.UpdateAvailability)
	}
}
