package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-finder/utils"
)

// AccessKeyContextKey holds the accepted key for handlers that need to build
// redirects back to the edit listing.
const AccessKeyContextKey = "access_key"

// Authorizer decides whether a supplied key opens the edit surface.
type Authorizer interface {
	Authorize(key string) bool
}

// RequireAccessKey checks the `key` query parameter (or form field) on every
// request. A wrong key never reaches the handler: the visitor is sent home
// with a notice.
func RequireAccessKey(guard Authorizer, flash *utils.FlashStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("key")
		if key == "" {
			key = c.PostForm("key")
		}

		if !guard.Authorize(key) {
			utils.InfoLogger.Printf("Rejected edit request %s %s from %s: invalid access key",
				c.Request.Method, c.Request.URL.Path, c.ClientIP())
			flash.Error(c, "Invalid access key. Access denied.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(AccessKeyContextKey, key)
		c.Next()
	}
}
