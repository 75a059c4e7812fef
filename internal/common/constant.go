package common

// TokenStorageKey is the single well-known key under which the client keeps
// the session token, mirroring the browser client's localStorage key.
const TokenStorageKey = "jwt-token"

// AuthHeaderName is the HTTP header used to carry the session token on
// requests to protected endpoints.
const AuthHeaderName = "Authorization"
