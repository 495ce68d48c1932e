package middleware

import (
	"strings"

	"campus-core/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys the auth stack sets and the rest of the middleware/handler
// chain reads.
const (
	ctxUserID        = "user_id"
	ctxUserEmail     = "user_email"
	ctxUserRole      = "user_role"
	ctxPermissions   = "user_permissions"
	ctxInstitutionID = "institution_id"
)

// bearerToken extracts the token from an Authorization header, or "" when
// the header is absent or not a Bearer scheme.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// setClaimsContext copies validated token claims into the request context.
func setClaimsContext(c *gin.Context, claims *utils.Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUserEmail, claims.Email)
	c.Set(ctxUserRole, claims.Role)
	c.Set(ctxPermissions, claims.Permissions)
	if claims.InstitutionID != "" {
		c.Set(ctxInstitutionID, claims.InstitutionID)
	}
}

// AuthMiddleware returns a middleware that validates JWT tokens
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, utils.ErrTokenMissing)
			c.Abort()
			return
		}

		tokenString := bearerToken(authHeader)
		if tokenString == "" {
			utils.Error(c, 401, utils.ErrTokenInvalid)
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			utils.Error(c, 401, err)
			c.Abort()
			return
		}

		setClaimsContext(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware validates a JWT when one is presented but lets
// anonymous requests through untouched.
func OptionalAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c.GetHeader("Authorization")); tokenString != "" {
			if claims, err := jwtManager.ValidateAccessToken(tokenString); err == nil {
				setClaimsContext(c, claims)
			}
		}
		c.Next()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return uuid.Nil, false
	}
	if id, ok := userID.(uuid.UUID); ok {
		return id, true
	}
	return uuid.Nil, false
}

// GetUserRole extracts user role from context
func GetUserRole(c *gin.Context) string {
	role, _ := c.Get(ctxUserRole)
	if r, ok := role.(string); ok {
		return r
	}
	return ""
}

// GetUserEmail extracts user email from context
func GetUserEmail(c *gin.Context) string {
	email, _ := c.Get(ctxUserEmail)
	if e, ok := email.(string); ok {
		return e
	}
	return ""
}

// GetInstitutionID extracts institution ID from context
func GetInstitutionID(c *gin.Context) string {
	institutionID, _ := c.Get(ctxInstitutionID)
	if id, ok := institutionID.(string); ok {
		return id
	}
	return ""
}

// GetUserPermissions extracts user permissions from context
func GetUserPermissions(c *gin.Context) []string {
	permissions, _ := c.Get(ctxPermissions)
	if p, ok := permissions.([]string); ok {
		return p
	}
	return []string{}
}
