package router

import (
	"campus-core/internal/handler"
	"campus-core/internal/middleware"
	"campus-core/internal/repository"
	"campus-core/internal/service"

	"github.com/gin-gonic/gin"
)

// setupSchedulingRoutes wires the timetable CRUD and generation surface.
func (r *Router) setupSchedulingRoutes(rg *gin.RouterGroup) {
	ttRepo := repository.NewTimetableRepository(r.db)
	teacherRepo := repository.NewTeacherRepository(r.db)

	ttService := service.NewTimetableService(ttRepo, r.config.Scheduling)
	ttHandler := handler.NewTimetableHandler(ttService, teacherRepo)

	timetable := rg.Group("/timetable")
	{
		timetable.POST("", middleware.RequireAdmin(), ttHandler.Create)
		timetable.GET("", ttHandler.GetAll)
		timetable.GET("/generate", middleware.RequireAdmin(), ttHandler.GenerateGreedy)
		timetable.GET("/generate/genetic", middleware.RequireAdmin(), ttHandler.GenerateGenetic)
		timetable.GET("/generate/graph-coloring", middleware.RequireAdmin(), ttHandler.GenerateGraphColoring)
		timetable.GET("/generate/compare", middleware.RequireAdmin(), ttHandler.Compare)
		timetable.POST("/generate/save", middleware.RequireAdmin(), ttHandler.GenerateSave)
		timetable.PUT("/:id", middleware.RequireAdmin(), ttHandler.Update)
		timetable.DELETE("/:id", middleware.RequireAdmin(), ttHandler.Delete)
	}
}
