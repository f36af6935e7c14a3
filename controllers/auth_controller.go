package controllers

import (
	"net/http"

	"unityplates-backend/middlewares"
	"unityplates-backend/services"

	"github.com/gin-gonic/gin"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60

type TokenInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type AuthController struct {
	tokens     *services.TokenService
	production bool
}

func NewAuthController(tokens *services.TokenService, production bool) *AuthController {
	return &AuthController{tokens: tokens, production: production}
}

// IssueToken handles POST /jwt: signs a session token for the supplied
// identity and sets it as the session cookie.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ac.tokens.Issue(services.Identity{
		Email: input.Email,
		Name:  input.Name,
		Photo: input.Photo,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	ac.setSessionCookie(c, token, sessionCookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie. Attributes must match the ones it was
// set with or browsers keep the old cookie around.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// setSessionCookie is httpOnly always; Secure and SameSite=None only in
// production, where the frontend lives on another origin behind TLS.
// Development stays SameSite=Strict over plain HTTP.
func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if ac.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middlewares.SessionCookieName, token, maxAge, "/", "", ac.production, true)
}
