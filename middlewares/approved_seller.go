package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/utils"
)

// RequireApprovedSeller blocks sellers whose account has not been approved
// from write actions. Non-seller roles pass through untouched.
func RequireApprovedSeller() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != models.RoleSeller {
			c.Next()
			return
		}

		status, _ := c.Get("status")
		if status != models.StatusApproved {
			utils.RespondError(c, http.StatusForbidden,
				fmt.Errorf("seller account is %v, approval required", status))
			c.Abort()
			return
		}

		c.Next()
	}
}
