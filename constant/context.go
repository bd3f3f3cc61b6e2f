package constant

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	ProfileKey   contextKey = "profile"
	SessionIDKey contextKey = "session_id"
)
