package auth

import (
	"fmt"
	"net/http"
	"time"

	"doris-art/config"

	"github.com/gin-gonic/gin"
)

func setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, value, maxAge, "/", "", config.IsProduction(), true)
}

// Login checks the shared admin password and starts a 24h session.
func Login(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if !CheckPassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := IssueSession(time.Now())
	if err != nil {
		fmt.Println("❌ Session error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during login"})
		return
	}

	setSessionCookie(c, token, int(SessionTTL/time.Second))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func Status(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	_, err = VerifySession(token)
	c.JSON(http.StatusOK, gin.H{"authenticated": err == nil})
}
