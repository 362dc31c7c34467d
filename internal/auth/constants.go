package auth

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "token"

	ContextKeyClaims = "session_claims"

	jsonKeyMessage = "message"

	paramEmail = "email"
)

const (
	msgUnauthorizedAccess      = "unauthorized access"
	msgForbiddenAccess         = "access forbidden"
	msgForbiddenSelfOnly       = "forbidden access"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
	msgClaimsNotInContext      = "session claims not in context"
)
