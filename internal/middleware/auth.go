package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rentalbilling/internal/observability"
	"rentalbilling/pkg/response"
)

var errMalformedAuthorization = errors.New("invalid authorization format, expected 'Bearer <token>'")

// tokenFromRequest reads the access_token cookie first, then the Authorization header.
// An empty token without error means the caller is anonymous.
func tokenFromRequest(c *gin.Context) (string, error) {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token, nil
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", nil
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errMalformedAuthorization
	}
	return parts[1], nil
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(secret []byte, raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Identify attaches the caller's user id to the context when a token is presented.
// Anonymous requests go through; a bad token is rejected.
func Identify(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := tokenFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
			return
		}
		if raw == "" {
			c.Next()
			return
		}

		claims, err := ParseToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token: "+err.Error()))
			return
		}

		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			c.Set(observability.UserIDKey, sub)
		}
		c.Next()
	}
}
