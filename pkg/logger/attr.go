package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// TenantID records the tenant identifier under the key "tenant_id".
func TenantID(id string) slog.Attr {
	return slog.String("tenant_id", id)
}

// SessionID records the session identifier under the key "session_id".
func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

// Role records a role name under the key "role".
func Role(role string) slog.Attr {
	return slog.String("role", role)
}

// Permission records a permission string under the key "permission".
func Permission(permission string) slog.Attr {
	return slog.String("permission", permission)
}

// FlagKey records a feature flag key under the key "flag_key".
func FlagKey(key string) slog.Attr {
	return slog.String("flag_key", key)
}

// InvitationID records the invitation identifier under the key "invitation_id".
func InvitationID(id string) slog.Attr {
	return slog.String("invitation_id", id)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Endpoint records the request path under the key "endpoint".
func Endpoint(path string) slog.Attr {
	return slog.String("endpoint", path)
}
