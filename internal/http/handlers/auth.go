package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/routes"
	"github.com/techexpo/console/internal/screens"
	"github.com/techexpo/console/internal/session"
)

// AuthHandler exposes the login screen over HTTP. The session lives
// server-side; the response only tells the client where to navigate.
type AuthHandler struct {
	login    *screens.Login
	sessions session.Store
}

func NewAuthHandler(login *screens.Login, sessions session.Store) *AuthHandler {
	return &AuthHandler{login: login, sessions: sessions}
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var form screens.LoginForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed login payload", nil)
		return
	}

	landing, ok := h.login.Submit(ctx.Request.Context(), form)
	if !ok {
		RespondUnauthorized(ctx, "Invalid username or password")
		return
	}

	user, _ := h.sessions.User()
	ctx.JSON(http.StatusOK, gin.H{
		"username":   user.Username,
		"role":       user.Role,
		"redirectTo": landing,
	})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	h.login.Logout()
	ctx.JSON(http.StatusOK, gin.H{"redirectTo": routes.Path(routes.Login)})
}

// Session reports who is signed in; the client shell uses it to decide
// between the login page and the console chrome.
func (h *AuthHandler) Session(ctx *gin.Context) {
	user, ok := h.sessions.User()
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user,
		"landing":       routes.Landing(user.Role),
	})
}
