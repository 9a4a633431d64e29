package middleware

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the cart session id for browser clients.
	SessionCookie = "cart_session"
	// ContextSessionKey is where the resolved session id lives in the gin context.
	ContextSessionKey = "session_id"

	sessionCookieMaxAge = int(30 * 24 * time.Hour / time.Second)
)

// CartSession resolves the shopper's session id: cookie first, then a guest
// JWT from the Authorization header, otherwise a fresh id is minted and set
// as a cookie. Handlers read the result via SessionID.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sid, err := c.Cookie(SessionCookie); err == nil && sid != "" {
			c.Set(ContextSessionKey, sid)
			c.Next()
			return
		}

		if sid := sessionFromToken(c.GetHeader("Authorization")); sid != "" {
			c.Set(ContextSessionKey, sid)
			c.Next()
			return
		}

		sid := uuid.NewString()
		c.SetCookie(SessionCookie, sid, sessionCookieMaxAge, "/", "", false, true)
		c.Set(ContextSessionKey, sid)
		c.Next()
	}
}

// SessionID returns the session id resolved by CartSession, or "" if the
// middleware did not run.
func SessionID(c *gin.Context) string {
	v, ok := c.Get(ContextSessionKey)
	if !ok {
		return ""
	}
	sid, _ := v.(string)
	return sid
}

// sessionFromToken extracts the session_id claim from a guest JWT.
func sessionFromToken(tokenString string) string {
	if tokenString == "" {
		return ""
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["session_id"].(string)
	return sid
}
