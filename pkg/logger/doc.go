// Package logger builds structured slog loggers for SDK components and
// carries the attribute helpers used across the platform packages
// (user_id, tenant_id, role, permission, flag_key, ...), keeping log
// field names consistent between services and the SDK.
package logger
