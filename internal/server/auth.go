package server

import (
	"net/http"
	"strings"

	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// requesterClaims identifies the dashboard user a request is made for.
type requesterClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// requireRequester accepts an HS256 bearer token carrying a username claim and
// stores the username on the context.
func requireRequester(secret string) gin.HandlerFunc {
	key := []byte(secret)
	keyFunc := func(*jwt.Token) (any, error) { return key, nil }

	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			rejectRequester(c, nil)
			return
		}

		claims := &requesterClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, keyFunc,
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || claims.Username == "" {
			rejectRequester(c, err)
			return
		}

		c.Set(ctxRequester, claims.Username)
		c.Next()
	}
}

func rejectRequester(c *gin.Context, err error) {
	utils.WithComponent("auth").Warn("Unauthorized access attempt",
		zap.String(utils.FieldPath, c.Request.URL.Path),
		zap.Error(err))
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MessageInvalidToken})
}

func requester(c *gin.Context) string {
	return c.GetString(ctxRequester)
}
