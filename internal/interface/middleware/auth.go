package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kudoswall/kudos-wall-backend/pkg/helpers"
	"github.com/kudoswall/kudos-wall-backend/pkg/response"
)

// Context key under which the authenticated user id is stored.
const CtxUserIDKey = "userID"

// TokenHeader is the custom header carrying the bearer token. Clients send
// the raw base64 token here, not an Authorization: Bearer value.
const TokenHeader = "authtoken"

// Auth validates the authtoken header and injects the user id into the Gin
// context. Tokens are valid until natural expiry; there is no revocation
// list, so no session store is consulted.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "authToken in headers is required", nil)
			c.Abort()
			return
		}
		userID, err := tokens.Parse(token)
		if err != nil {
			msg := "Invalid token format"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}
