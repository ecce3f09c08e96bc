package interfaces

// Logger is the structured logging port used by core and api.
// Fields are attached as key/value pairs; a nil map logs the message alone.
//
//	logger.Info("Stored new access token", map[string]interface{}{
//		"expires_at": cred.ExpiresAt,
//	})
//
// Secrets such as access tokens and client credentials are never passed as fields.
type Logger interface {
	// Debug is for per-request detail: cache hits, merge counts.
	Debug(msg string, fields map[string]interface{})

	// Info is for lifecycle events: startup, token refresh.
	Info(msg string, fields map[string]interface{})

	// Warn is for degraded results that still produce a response, such as a missing preview.
	Warn(msg string, fields map[string]interface{})

	// Error is for failures returned to the caller.
	Error(msg string, fields map[string]interface{})
}
