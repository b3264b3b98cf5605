package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-todo-api/internal/core/auth"
	resp "go-todo-api/internal/transport/http/response"
)

// AuthJWT authenticates the bearer token and, when roles are given,
// requires the principal's role to be one of them.
func AuthJWT(j *auth.JWTer, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}
		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			resp.Abort(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Set("claims", claims)
		c.Set("userId", claims.UID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole tightens a single route inside an already authenticated
// group.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !roleAllowed(c.GetString("role"), roles) {
			resp.Abort(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
