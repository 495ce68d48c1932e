package router

import (
	"campus-core/internal/handler"
	"campus-core/internal/middleware"
	"campus-core/internal/repository"
	"campus-core/internal/service"

	"github.com/gin-gonic/gin"
)

// setupUserRoutes wires user administration and self-service profile routes.
func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := repository.NewUserRepository(r.db)
	instRepo := repository.NewInstitutionRepository(r.db)

	// AuthService is stateless beyond its repo + JWT manager, so building a
	// second instance here is cheaper than threading the one from
	// setupAuthRoutes through the router.
	authService := service.NewAuthService(userRepo, r.jwtManager)
	userService := service.NewUserService(userRepo, instRepo, authService)
	userHandler := handler.NewUserHandler(userService)

	users := rg.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.GetAllUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.PATCH("/:id/status", userHandler.ToggleStatus)
	}

	// Self-service profile routes, available to any authenticated user.
	profile := rg.Group("/profile")
	{
		profile.GET("", userHandler.GetProfile)
		profile.PUT("", userHandler.UpdateProfile)
		profile.PUT("/avatar", userHandler.UpdateAvatar)
		profile.PUT("/password", userHandler.UpdatePassword)
	}
}
