package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Capability is a policy requirement a route declares. Routes compose them
// into a single Require call instead of scattering role checks per handler.
type Capability int

const (
	// Authenticated requires a verifiable access token.
	Authenticated Capability = iota
	// Admin requires the admin claim. Implies Authenticated.
	Admin
	// Customer requires a non-admin identity; carts and checkout are a
	// customer-only feature. Implies Authenticated.
	Customer
)

const claimsKey = "authClaims"

// Gate is the request guard in front of every protected route.
type Gate struct {
	tokens *TokenService
}

func NewGate(tokens *TokenService) *Gate {
	return &Gate{tokens: tokens}
}

// Require verifies the bearer token and evaluates the declared capabilities
// in order. A missing token responds 401; a token that fails verification
// responds 500 with the verification error.
func (g *Gate) Require(caps ...Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"auth": "Failed. No token."})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := g.tokens.ParseToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"auth":    "Failed",
				"message": err.Error(),
			})
			return
		}

		for _, capability := range caps {
			switch capability {
			case Admin:
				if !claims.IsAdmin {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
						"auth":    "Failed",
						"message": "Access Forbidden",
					})
					return
				}
			case Customer:
				if claims.IsAdmin {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access Forbidden"})
					return
				}
			}
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the claims attached by the gate. It must only be
// called from handlers behind a Require middleware.
func CurrentClaims(c *gin.Context) *Claims {
	claims, _ := c.Get(claimsKey)
	return claims.(*Claims)
}
