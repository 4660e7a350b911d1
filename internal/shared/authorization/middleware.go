package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inqboard/internal/shared/constants"
	"inqboard/internal/shared/utils"
)

// RequireAdmin must run after authentication has stored the role in the
// request context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
