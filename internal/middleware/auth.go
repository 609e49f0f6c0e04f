package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/wb-go/wbf/ginext"
)

// Principal identifies the authenticated staff member behind a request.
type Principal struct {
	Email string
	Name  string
}

const principalKey = "principal"

// Auth validates the Bearer token (HS256) and stores the caller's
// identity in the request context. Every /api route sits behind this.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "bearer token required"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		email, _ := claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "email claim missing"})
			return
		}
		name, _ := claims["name"].(string)

		SetPrincipal(c, Principal{Email: email, Name: name})
		c.Next()
	}
}

// SetPrincipal stores the caller's identity on the request context.
func SetPrincipal(c *ginext.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the identity stored by Auth, if any.
func PrincipalFrom(c *ginext.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
