package handlers

import (
	"errors"
	"net/http"

	"dealership/internal/auth"
	"dealership/internal/database"
	"dealership/internal/middleware"
	"dealership/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const statusAuthenticated = "Authenticated"

type registerRequest struct {
	UserName  string `json:"userName" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	username := auth.NormalizeUsername(req.UserName)
	user, err := h.users.Register(c.Request.Context(), auth.RegisterInput{
		Username:  username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	switch {
	case errors.Is(err, auth.ErrUserExists):
		c.JSON(http.StatusOK, gin.H{"userName": username, "error": "Already Registered"})
		return
	case errors.Is(err, auth.ErrEmptyUsername):
		badRequest(c, err)
		return
	case err != nil:
		h.log.Error("failed to register user", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"userName": username, "error": "Registration failed"})
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.log.Error("failed to save session", "user_id", user.ID, "error", err)
	}
	database.CreateActivityLog(h.db, h.log, user.ID, "user", "register", "Зарегистрирован пользователь "+user.Username)

	c.JSON(http.StatusOK, gin.H{"userName": user.Username, "status": statusAuthenticated})
}

type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password"`
}

// Login при неудаче отвечает {userName} без поля status.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	username := auth.NormalizeUsername(req.UserName)
	user, err := h.users.Authenticate(c.Request.Context(), username, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.log.Error("failed to authenticate", "username", username, "error", err)
		}
		c.JSON(http.StatusOK, gin.H{"userName": username})
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.log.Error("failed to save session", "user_id", user.ID, "error", err)
	}
	database.CreateActivityLog(h.db, h.log, user.ID, "user", "login", "Вход пользователя "+user.Username)

	c.JSON(http.StatusOK, gin.H{"userName": user.Username, "status": statusAuthenticated})
}

// Logout сбрасывает сессию, даже если её не было.
func (h *Handler) Logout(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		database.CreateActivityLog(h.db, h.log, user.ID, "user", "logout", "Выход пользователя "+user.Username)
	}

	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		h.log.Error("failed to clear session", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"userName": ""})
}

func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"userName": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userName": user.Username})
}

func (h *Handler) startSession(c *gin.Context, user *models.User) error {
	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionUsername, user.Username)
	return sess.Save()
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  http.StatusBadRequest,
		"message": "Invalid request body: " + err.Error(),
	})
}
