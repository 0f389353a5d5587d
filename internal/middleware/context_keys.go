package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// ownerKey stores the authenticated signing identity.
	ownerKey = contextKey("owner")
	// authMethodKey records which middleware authenticated the request.
	authMethodKey = contextKey("authMethod")
)

const (
	AuthMethodSignature = "signature"
	AuthMethodJWT       = "jwt"
)

// setOwner stores the authenticated owner in both the Gin context and the
// request context, and enriches the request logger with it.
func setOwner(c *gin.Context, owner domain.PublicKey, method string) {
	c.Set(string(ownerKey), owner)
	c.Set(string(authMethodKey), method)

	ctx := context.WithValue(c.Request.Context(), ownerKey, owner)
	logger := GetLoggerFromCtx(ctx).With(
		slog.String("owner", owner.String()),
		slog.String("auth_method", method),
	)
	c.Request = c.Request.WithContext(WithLogger(ctx, logger))
}

// GetOwnerFromContext retrieves the authenticated owner from the Gin context.
// It returns the owner and a boolean indicating if it was found.
func GetOwnerFromContext(c *gin.Context) (domain.PublicKey, bool) {
	if v, exists := c.Get(string(ownerKey)); exists {
		owner, ok := v.(domain.PublicKey)
		return owner, ok
	}
	// check in the request context as well
	return GetOwnerFromCtx(c.Request.Context())
}

// GetOwnerFromCtx retrieves the authenticated owner from a standard context.
func GetOwnerFromCtx(ctx context.Context) (domain.PublicKey, bool) {
	owner, ok := ctx.Value(ownerKey).(domain.PublicKey)
	return owner, ok
}

func isAuthenticated(c *gin.Context) (string, bool) {
	method, exists := c.Get(string(authMethodKey))
	if !exists {
		return "", false
	}
	s, ok := method.(string)
	return s, ok
}
