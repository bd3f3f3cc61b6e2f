package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
)

// UserApp authenticates tokens issued by the account service.
type UserApp interface {
	ValidateToken(ctx context.Context, tokenString string) (*model.Profile, error)
}

type UserAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

// ValidateToken verifies an HS256 token and its live session, and returns the
// profile carried in its claims.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Profile, error) {
	claims := &model.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, fmt.Errorf("invalid user id in token")
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	// the session must still exist and belong to the same user
	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if sessionUserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	points := claims.RewardPoints
	if points < 0 {
		points = 0
	}
	return &model.Profile{
		UserID:       userID,
		Name:         claims.Name,
		Phone:        claims.Phone,
		Role:         claims.Role,
		RewardPoints: points,
	}, nil
}
