package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	accountRepo "egarage/database/repository/account"
	"egarage/models"
	"egarage/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// identitySnapshot is the cached resolution of a bearer token.
type identitySnapshot struct {
	AccountID string      `json:"accountId"`
	Role      models.Role `json:"role"`
}

// JWTAuthMiddleware validates the bearer token and resolves the account's
// identity and role into the request context. Resolutions are cached in
// Redis keyed by token hash so each request does not hit Mongo.
func JWTAuthMiddleware(accounts accountRepo.AccountRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		accountID, role, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		snap, ok := cachedIdentity(authCache, tokenString)
		if !ok {
			// Verify the account still exists before trusting the claims.
			acc, err := accounts.GetByID(accountID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
				return
			}
			snap = identitySnapshot{AccountID: acc.ID, Role: acc.Role}
			cacheIdentity(authCache, tokenString, snap)
		}

		if string(snap.Role) != role {
			// Tokens carry the role they were minted with; a mismatch means
			// a forged or stale token.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("accountID", snap.AccountID)
		c.Set("role", snap.Role)
		c.Next()
	}
}

func cachedIdentity(client *redis.Client, token string) (identitySnapshot, bool) {
	var snap identitySnapshot
	if client == nil {
		return snap, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := client.Get(ctx, utils.AuthCachePrefix+utils.HashToken(token)).Result()
	if err != nil {
		return snap, false
	}
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return snap, false
	}
	return snap, true
}

func cacheIdentity(client *redis.Client, token string, snap identitySnapshot) {
	if client == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := utils.AuthCachePrefix + utils.HashToken(token)
	if err := client.Set(ctx, key, data, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache identity", zap.Error(err))
	}
}

// AccountID returns the authenticated account id set by JWTAuthMiddleware.
func AccountID(c *gin.Context) string {
	id, _ := c.Get("accountID")
	s, _ := id.(string)
	return s
}

// RoleOf returns the authenticated role set by JWTAuthMiddleware.
func RoleOf(c *gin.Context) models.Role {
	r, _ := c.Get("role")
	role, _ := r.(models.Role)
	return role
}
