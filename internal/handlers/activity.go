package handlers

import (
	"net/http"
	"time"

	"dealership/internal/database"

	"github.com/gin-gonic/gin"
)

// activityEntry — запись журнала для JSON; хеш пароля наружу не попадает.
type activityEntry struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserName  string    `json:"userName"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}

// ListActivity стоит за middleware.RequireAuth.
func (h *Handler) ListActivity(c *gin.Context) {
	logs, err := database.RecentActivity(c.Request.Context(), h.db, database.ActivityLimit)
	if err != nil {
		h.log.Error("failed to list activity", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "message": "Failed to load activity"})
		return
	}

	entries := make([]activityEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, activityEntry{
			ID:        l.ID,
			CreatedAt: l.CreatedAt,
			UserName:  l.User.Username,
			Entity:    l.Entity,
			Action:    l.Action,
			Details:   l.Details,
		})
	}
	c.JSON(http.StatusOK, gin.H{"activity": entries})
}
