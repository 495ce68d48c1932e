package middleware

import (
	"campus-core/internal/models"
	"campus-core/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole returns a middleware that checks if the user has one of the required roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := GetUserRole(c)
		if userRole == "" {
			utils.Error(c, 401, utils.ErrTokenMissing)
			c.Abort()
			return
		}

		// Super Admin has access to everything
		if userRole == models.RoleSuperAdmin {
			c.Next()
			return
		}

		// Check if user has one of the required roles
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		utils.Error(c, 403, utils.ErrRoleNotAllowed)
		c.Abort()
	}
}

// RequirePermission returns a middleware that checks if the user has all required permissions
func RequirePermission(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userPerms := GetUserPermissions(c)

		// Super Admin has all permissions
		if contains(userPerms, "*") {
			c.Next()
			return
		}

		// Check all required permissions
		for _, required := range permissions {
			if !contains(userPerms, required) {
				utils.Error(c, 403, utils.ErrInsufficientPermissions)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// RequireAnyPermission returns a middleware that checks if the user has at least one of the permissions
func RequireAnyPermission(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userPerms := GetUserPermissions(c)

		// Super Admin has all permissions
		if contains(userPerms, "*") {
			c.Next()
			return
		}

		// Check if user has at least one permission
		for _, required := range permissions {
			if contains(userPerms, required) {
				c.Next()
				return
			}
		}

		utils.Error(c, 403, utils.ErrInsufficientPermissions)
		c.Abort()
	}
}

// RequireSuperAdmin returns a middleware that only allows super admins
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleSuperAdmin)
}

// RequireAdmin returns a middleware that allows admins and super admins
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleSuperAdmin, models.RoleAdmin)
}

// RequireTeacher returns a middleware that allows teachers, admins, and super admins
func RequireTeacher() gin.HandlerFunc {
	return RequireRole(models.RoleSuperAdmin, models.RoleAdmin, models.RoleTeacher)
}

// RequireStaff returns a middleware that allows all staff (not students)
func RequireStaff() gin.HandlerFunc {
	return RequireRole(models.RoleSuperAdmin, models.RoleAdmin, models.RoleTeacher)
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[string][]string{
	models.RoleSuperAdmin: {"*"},
	models.RoleAdmin: {
		"USER_CREATE", "USER_UPDATE", "USER_DELETE", "USER_VIEW",
		"TEACHER_MANAGE",
		"COURSE_MANAGE", "CLASSROOM_MANAGE", "STUDENT_GROUP_MANAGE",
		"ACADEMIC_YEAR_MANAGE",
		"TIMETABLE_MANAGE", "TIMETABLE_GENERATE", "TIMETABLE_VIEW",
		"REPORT_GENERATE",
	},
	models.RoleTeacher: {
		"TIMETABLE_VIEW",
		"TEACHER_AVAILABILITY_MANAGE_OWN",
	},
	models.RoleStudent: {
		"PROFILE_VIEW_OWN", "PROFILE_UPDATE_OWN",
		"TIMETABLE_VIEW_OWN",
	},
}

// GetPermissionsForRole returns the permissions for a given role
func GetPermissionsForRole(role string) []string {
	if perms, ok := RolePermissions[role]; ok {
		return perms
	}
	return []string{}
}
