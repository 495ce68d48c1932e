package router

import (
	"campus-core/internal/handler"
	"campus-core/internal/middleware"
	"campus-core/internal/repository"
	"campus-core/internal/service"

	"github.com/gin-gonic/gin"
)

// setupAcademicYearRoutes wires academic year CRUD, the scheduling domain's
// term boundary for course and timetable entry scoping.
func (r *Router) setupAcademicYearRoutes(rg *gin.RouterGroup) {
	ayRepo := repository.NewAcademicYearRepository(r.db)
	ayService := service.NewAcademicYearService(ayRepo)
	ayHandler := handler.NewAcademicYearHandler(ayService)

	years := rg.Group("/academic-years")
	{
		years.GET("", ayHandler.GetAll)
		years.GET("/current", ayHandler.GetCurrent)
		years.GET("/:id", ayHandler.GetByID)
		years.POST("", middleware.RequireAdmin(), ayHandler.Create)
		years.PUT("/:id", middleware.RequireAdmin(), ayHandler.Update)
		years.PATCH("/:id/activate", middleware.RequireAdmin(), ayHandler.Activate)
		years.DELETE("/:id", middleware.RequireAdmin(), ayHandler.Delete)
	}
}
