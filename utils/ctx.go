package utils

import "github.com/gin-gonic/gin"

// Context keys the auth middlewares set and the handlers read back.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
)

// CurrentUserID returns the authenticated user id, or zero when the request
// carried no valid token.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserID)
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
