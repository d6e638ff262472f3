package common

// AuthHeaderName is the HTTP header carrying the admin credential on
// outbound requests.
const AuthHeaderName = "Authorization"

// AuthScheme is the credential scheme expected by the backend.
const AuthScheme = "Bearer"

// RequestIDHeaderName carries a per-request correlation id for diagnostics.
const RequestIDHeaderName = "X-Request-Id"
