package auth

import (
	"net/http"
	"strings"

	"gallery/models"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// HandlerFunc receives the principal resolved from the bearer token. Handlers
// registered through the optional variant may receive nil.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds bearer-token verification + user pre-loading
type Router struct {
	Base gin.IRouter
}

// RequestUser resolves the caller from the Authorization header. It returns
// nil on missing/malformed header, failed verification, or a token whose
// subject no longer exists. The caller never learns which check failed.
func RequestUser(c *gin.Context) *models.User {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil
	}
	claims, err := VerifyToken(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return nil
	}
	user, err := models.UserByID(claims.UserID)
	if err != nil {
		return nil
	}
	return &user
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	user := RequestUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	handler(c, user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) PUT(path string, handler HandlerFunc) {
	cr.Base.PUT(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

// OptionalGET registers a route that works for anonymous callers too: any
// authentication failure is swallowed and the handler runs with a nil user.
func (cr *Router) OptionalGET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		handler(c, RequestUser(c))
	})
}
