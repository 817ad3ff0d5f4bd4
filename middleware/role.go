package middleware

import (
	"net/http"

	"egarage/models"

	"github.com/gin-gonic/gin"
)

// capabilities maps a named operation to the roles permitted to perform it.
// Routes declare the operation they guard; changing an operation's audience
// means editing exactly one row here.
var capabilities = map[string][]models.Role{
	"vehicle:add":    {models.RoleCustomer},
	"vehicle:list":   {models.RoleCustomer, models.RoleAdmin},
	"vehicle:get":    {models.RoleCustomer, models.RoleAdmin},
	"vehicle:update": {models.RoleCustomer, models.RoleAdmin},
	"vehicle:delete": {models.RoleCustomer, models.RoleAdmin},

	"provider:register": {models.RoleServiceProvider},

	"appointment:book":          {models.RoleCustomer, models.RoleServiceProvider, models.RoleAdmin},
	"appointment:pay":           {models.RoleCustomer, models.RoleServiceProvider, models.RoleAdmin},
	"appointment:transition":    {models.RoleCustomer, models.RoleServiceProvider, models.RoleAdmin},
	"appointment:list-own":      {models.RoleCustomer, models.RoleServiceProvider, models.RoleAdmin},
	"appointment:list-provider": {models.RoleServiceProvider},
	"appointment:list-all":      {models.RoleAdmin},

	"message:list": {models.RoleAdmin},
}

// RequireCapability gates a route on the capability table. It must run
// after JWTAuthMiddleware so the role is present in the context.
func RequireCapability(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, ok := capabilities[op]
		if !ok {
			// Unknown operations fail closed.
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		role := RoleOf(c)
		for _, r := range allowed {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}
