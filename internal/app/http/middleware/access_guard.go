package middleware

import (
	"net/http"
	"time"

	"bettools-app/database"
	"bettools-app/internal/domain/access"
	"bettools-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireAccess gates the VIP tools behind the access resolver: a running
// trial or an active subscription gets through, everything else is told
// apart so the frontend can route to the paywall vs. the signup flow.
func RequireAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		var user users.User
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		state := access.Resolve(access.RecordFor(user), time.Now())
		if !state.GrantsAccess() {
			status := http.StatusForbidden
			if state.Kind == access.KindExpired {
				status = http.StatusPaymentRequired
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":        "Active trial or subscription required",
				"access_state": string(state.Kind),
			})
			return
		}

		c.Set("access_state", state)
		c.Next()
	}
}
