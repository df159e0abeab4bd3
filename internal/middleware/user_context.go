package middleware

import (
	"dealership/internal/auth"
	"dealership/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionUserID   = "user_id"
	SessionUsername = "username"

	currentUserKey = "CurrentUser"
)

// InjectUser кладёт в контекст пользователя из сессии, если он есть в БД.
func InjectUser(users *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get(SessionUserID); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user, err := users.UserByID(c.Request.Context(), uid); err == nil {
					c.Set(currentUserKey, user)
				}
			}
		}

		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
