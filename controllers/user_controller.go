// Package controllers holds the gin HTTP handlers.
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/borsatogiordano/daily-diet-api/middlewares"
	"github.com/borsatogiordano/daily-diet-api/services"
)

type RegisterInput struct {
	Name string `json:"name" binding:"required"`
}

type UserController struct {
	users            *services.UserService
	sessionMaxAgeSec int
	logger           *zap.Logger
}

func NewUserController(users *services.UserService, sessionMaxAgeSec int, logger *zap.Logger) *UserController {
	return &UserController{users: users, sessionMaxAgeSec: sessionMaxAgeSec, logger: logger}
}

// Register creates the user and hands back its session cookie. This is
// the only unauthenticated write in the API.
func (ctl *UserController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.Register(c.Request.Context(), input.Name)
	if err != nil {
		if errors.Is(err, services.ErrNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "name already taken"})
			return
		}
		ctl.logger.Error("register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	c.SetCookie(middlewares.SessionCookie, user.SessionID.String(), ctl.sessionMaxAgeSec, "/", "", false, true)
	c.JSON(http.StatusCreated, user)
}
