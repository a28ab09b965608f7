package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stakehall/core/internal/database"
	"github.com/stakehall/core/internal/models"
	jwtpkg "github.com/stakehall/core/internal/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	store    *database.Store
	tokenTTL time.Duration
}

func NewService(store *database.Store, tokenTTL time.Duration) *Service {
	return &Service{store: store, tokenTTL: tokenTTL}
}

// HashPassword derives a bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash. Any
// verification error counts as a mismatch.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login resolves the first admin user matching email and issues an
// access token embedding email and role.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	var user models.AdminUser
	err := s.store.FindOne(ctx, models.CollectionAdminUser, bson.M{"email": email}, &user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", errInvalidCredentials
		}
		return "", err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return "", errInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = models.RoleAdmin
	}
	return jwtpkg.Sign(user.Email, string(role), s.tokenTTL)
}

// SeedAdmin creates the bootstrap admin user. An existing email is
// reported as-is, without modification.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) (id string, created bool, err error) {
	count, err := s.store.Count(ctx, models.CollectionAdminUser, bson.M{"email": email})
	if err != nil {
		return "", false, err
	}
	if count > 0 {
		return "", false, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", false, err
	}
	id, err = s.store.Create(ctx, models.CollectionAdminUser, models.AdminUser{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

var errInvalidCredentials = errors.New("invalid credentials")
