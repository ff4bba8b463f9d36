package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"academy-cms/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// checkPassword compares the submitted password against ADMIN_PASSWORD, which
// may be configured either as a bcrypt hash or as a plaintext value.
func checkPassword(input string) bool {
	configured := config.ADMIN_PASSWORD
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(input)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(input)) == 1
}

func Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if !checkPassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	if _, err := CreateSession(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func Logout(c *gin.Context) {
	DeleteSession(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": CheckSession(c)})
}
