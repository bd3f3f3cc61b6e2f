package model

import "github.com/golang-jwt/jwt/v5"

// Profile is the authenticated shopper or operator, read from token claims.
type Profile struct {
	UserID       uint64 `json:"user_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role,omitempty"`
	RewardPoints int64  `json:"reward_points"`
}

// UserClaims extends the registered claims with the profile fields issued by the
// account service.
type UserClaims struct {
	jwt.RegisteredClaims
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role,omitempty"`
	RewardPoints int64  `json:"reward_points,omitempty"`
}
