package handlers

import (
	"net/http"

	"dealership/internal/database"
	"dealership/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Прокси-ручки всегда отвечают HTTP 200, бизнес-код лежит в поле status.

func (h *Handler) GetDealers(c *gin.Context) {
	res := h.dealers.ListDealers(c.Request.Context(), c.Param("state"))
	c.JSON(http.StatusOK, res.Body())
}

func (h *Handler) GetDealer(c *gin.Context) {
	res := h.dealers.GetDealer(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, res.Body())
}

func (h *Handler) GetDealerReviews(c *gin.Context) {
	res := h.dealers.GetDealerReviews(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, res.Body())
}

// AddReview стоит за middleware.RequireAuth.
func (h *Handler) AddReview(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.log.Error("failed to read review body", "error", err)
		c.JSON(http.StatusOK, gin.H{"status": http.StatusInternalServerError, "message": "Failed to read request body"})
		return
	}

	res := h.dealers.AddReview(c.Request.Context(), c.Request.Method, body)
	if res.Status == http.StatusCreated {
		if user, ok := middleware.CurrentUser(c); ok {
			database.CreateActivityLog(h.db, h.log, user.ID, "review", "create", "Отзыв отправлен пользователем "+user.Username)
		}
	}

	c.JSON(http.StatusOK, res.Body())
}
