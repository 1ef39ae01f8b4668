package services

import (
	"context"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/auth"
	"tailor-backend/internal/cache"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

// UserService handles authentication.
type UserService struct {
	Users repositories.UserStore
	JWT   *auth.JWTManager
}

func NewUserService(users repositories.UserStore, jwt *auth.JWTManager) *UserService {
	return &UserService{Users: users, JWT: jwt}
}

// Login verifies credentials and issues a JWT. Invalid email, wrong
// password and inactive accounts all produce the same error so the
// response does not leak which part failed.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.Conflict("Invalid credentials")
	}

	user, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Conflict("Invalid credentials")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.Conflict("Invalid credentials")
	}

	// Skip the bcrypt check when these exact credentials were verified
	// recently for this user.
	cachedID, cached := cache.GetCachedAuth(ctx, req.Email, req.Password)
	if !cached || cachedID != user.ID {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, apperrors.Conflict("Invalid credentials")
		}
		cache.CacheAuth(ctx, req.Email, req.Password, user.ID)
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User: models.AuthUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
