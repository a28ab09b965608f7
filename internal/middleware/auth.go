package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/models"
	"github.com/stakehall/core/internal/pkg/jwt"
	"github.com/stakehall/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson"
)

const contextKeyUser = "admin_user"

// Auth enforces JWT authentication: the token must verify, and its
// subject must resolve to an existing, active admin user.
func Auth(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveUser(c, store)
		if err != nil {
			response.Unauthorized(c, "Could not validate credentials")
			return
		}
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// RequireRoles gates a handler on the caller's role. It must run
// after Auth.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Unauthorized(c, "Could not validate credentials")
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated admin user, or nil.
func CurrentUser(c *gin.Context) *models.AdminUser {
	v, _ := c.Get(contextKeyUser)
	user, _ := v.(*models.AdminUser)
	return user
}

func resolveUser(c *gin.Context, store *database.Store) (*models.AdminUser, error) {
	claims, err := jwt.Parse(ExtractToken(c))
	if err != nil {
		return nil, err
	}

	// Documents predating the active flag count as active.
	var doc bson.M
	if err := store.FindOne(c.Request.Context(), models.CollectionAdminUser, bson.M{"email": claims.Subject}, &doc); err != nil {
		return nil, err
	}
	if active, ok := doc["is_active"].(bool); ok && !active {
		return nil, errInactiveUser
	}

	role, _ := doc["role"].(string)
	return &models.AdminUser{
		Email:    claims.Subject,
		Role:     models.Role(role),
		IsActive: true,
	}, nil
}

var errInactiveUser = errors.New("user is inactive")

// ExtractToken pulls the bearer token from the Authorization header.
func ExtractToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
