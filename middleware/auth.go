package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"akkor-hotel-backend/auth"
	"akkor-hotel-backend/services"
	"akkor-hotel-backend/utils"
)

const principalKey = "currentUser"

// Principal is the authenticated caller as resolved from the bearer
// token: identity plus admin flag.
type Principal struct {
	ID      uint
	Email   string
	Pseudo  string
	IsAdmin bool
}

type AuthMiddleware struct {
	jwter *auth.JWTer
	users *services.UserService
}

func NewAuthMiddleware(jwter *auth.JWTer, users *services.UserService) *AuthMiddleware {
	return &AuthMiddleware{jwter: jwter, users: users}
}

// RequireAuth validates the bearer token and resolves its subject to a
// live user. Missing/invalid/expired tokens yield 401; a token whose
// subject no longer exists yields 404.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.AbortError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := m.jwter.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				utils.AbortError(c, http.StatusUnauthorized, "Token expired")
			} else {
				utils.AbortError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		user, err := m.users.GetByPseudoWithRole(claims.Subject)
		if err != nil {
			utils.AbortError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			utils.AbortError(c, http.StatusNotFound, "User not found")
			return
		}

		c.Set(principalKey, Principal{
			ID:      user.ID,
			Email:   user.Email,
			Pseudo:  user.Pseudo,
			IsAdmin: user.IsAdmin,
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			utils.AbortError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !p.IsAdmin {
			utils.AbortError(c, http.StatusForbidden, "Admin privileges required")
			return
		}
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
