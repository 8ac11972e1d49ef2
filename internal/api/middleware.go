package api

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
)

// currentUserID returns the logged-in user's id, or 0 for anonymous.
func currentUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	v := session.Get(sessionUserID)
	if v == nil {
		return 0
	}
	id, ok := v.(uint)
	if !ok {
		return 0
	}
	return id
}

func currentUsername(c *gin.Context) string {
	session := sessions.Default(c)
	v := session.Get(sessionUsername)
	if v == nil {
		return ""
	}
	name, _ := v.(string)
	return name
}

// requirePageUser redirects anonymous visitors of page routes to the
// landing page.
func (s *Server) requirePageUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUserID(c) == 0 {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireJSONUser rejects anonymous calls to JSON routes with a 401.
func (s *Server) requireJSONUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUserID(c) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Not logged in"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireAdmin checks the admin flag against the database on every call, so
// a demoted admin loses access without re-login.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.store.FindUserByID(currentUserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
			c.Abort()
			return
		}
		if user == nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
