package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"academy-cms/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookie = "admin_session"
	sessionMaxAge = 7 * 24 * time.Hour
)

// CreateSession sets the admin session cookie and returns its value. The value
// is an HS256 token with a 7-day expiry claim, but nothing verifies it today:
// authentication is possession of a non-empty cookie. There is no server-side
// session record, so revocation before expiry is not possible.
func CreateSession(c *gin.Context) (string, error) {
	jti := make([]byte, 16)
	rand.Read(jti)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti": hex.EncodeToString(jti),
		"iat": now.Unix(),
		"exp": now.Add(sessionMaxAge).Unix(),
	})
	signed, err := token.SignedString([]byte(config.SESSION_SECRET))
	if err != nil {
		return "", err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, signed, int(sessionMaxAge.Seconds()), "/", "", false, true)
	return signed, nil
}

// CheckSession reports whether the request carries a non-empty session cookie.
func CheckSession(c *gin.Context) bool {
	value, err := c.Cookie(sessionCookie)
	return err == nil && value != ""
}

// DeleteSession clears the session cookie.
func DeleteSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
