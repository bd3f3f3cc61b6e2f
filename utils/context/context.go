package context

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetProfile returns the authenticated profile, or nil for anonymous shoppers.
func GetProfile(ctx context.Context) *model.Profile {
	p, _ := ctx.Value(constant.ProfileKey).(*model.Profile)
	return p
}

func GetSessionID(ctx context.Context) string {
	s, _ := ctx.Value(constant.SessionIDKey).(string)
	return s
}

func WithProfile(ctx context.Context, p *model.Profile) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, p.UserID)
	return context.WithValue(ctx, constant.ProfileKey, p)
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constant.SessionIDKey, sessionID)
}
