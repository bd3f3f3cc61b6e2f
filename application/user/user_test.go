package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/cmd/config"
	redismocks "github.com/muhammadheryan/storefront/mocks/repository/redis"
	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const secret = "test-secret-key-for-jwt-signing"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims model.UserClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func claims(sub, jti string, exp time.Duration) model.UserClaims {
	return model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
		},
		Name:         "Lan Nguyen",
		Phone:        "0901234567",
		Role:         "admin",
		RewardPoints: 1000,
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	type fields struct {
		config    *config.Config
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		token    func(t *testing.T) string
		mockCall func(f fields)
		want     *model.Profile
		wantErr  bool
	}{
		{
			name: "success: valid token",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{JWTSecret: secret}},
				redisRepo: redismocks.NewRepository(t),
			},
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("1", "jti-1", time.Hour))
			},
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, "jti-1").Return(uint64(1), nil).Once()
			},
			want: &model.Profile{UserID: 1, Name: "Lan Nguyen", Phone: "0901234567", Role: "admin", RewardPoints: 1000},
		},
		{
			name: "error: invalid token format",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{JWTSecret: secret}},
				redisRepo: redismocks.NewRepository(t),
			},
			token:   func(t *testing.T) string { return "invalid.token.string" },
			wantErr: true,
		},
		{
			name: "error: wrong secret",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{JWTSecret: secret}},
				redisRepo: redismocks.NewRepository(t),
			},
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("other"), claims("1", "jti-1", time.Hour))
			},
			wantErr: true,
		},
		{
			name: "error: expired",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{JWTSecret: secret}},
				redisRepo: redismocks.NewRepository(t),
			},
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("1", "jti-1", -time.Minute))
			},
			wantErr: true,
		},
		{
			name: "error: missing jti",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{JWTSecret: secret}},
				redisRepo: redismocks.NewRepository(t),
			},
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("1", "", time.Hour))
			},
			wantErr: true,
		},
		{
			name: "error: session not found in redis",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{JWTSecret: secret}},
				redisRepo: redismocks.NewRepository(t),
			},
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("1", "jti-1", time.Hour))
			},
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, "jti-1").Return(uint64(0), nil).Once()
			},
			wantErr: true,
		},
		{
			name: "error: redis failure",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{JWTSecret: secret}},
				redisRepo: redismocks.NewRepository(t),
			},
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("1", "jti-1", time.Hour))
			},
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, "jti-1").Return(uint64(0), errors.New("connection refused")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.redisRepo)

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
