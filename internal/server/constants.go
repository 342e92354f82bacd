package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too many requests. Please try again later."
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgTLSEnabled       = "TLS certificates found, serving HTTPS"
	LogMsgTLSDisabled      = "TLS certificates not found, serving HTTP"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgRateLimited      = "Rate limit exceeded"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
	HeaderAllowOrigin    = "Access-Control-Allow-Origin"
	HeaderAllowMethods   = "Access-Control-Allow-Methods"
	HeaderAllowHeaders   = "Access-Control-Allow-Headers"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// CORS values
const (
	CORSAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	CORSAllowedHeaders = "Content-Type, Authorization"
)

// TLS material expected inside the SSL directory
const (
	TLSKeyFile      = "private.key"
	TLSCertFile     = "certificate.crt"
	TLSCABundleFile = "ca_bundle.crt"
)

// Server limits
const (
	MaxRequestBodyBytes    = 1 << 20
	ReadHeaderTimeout      = 5 * time.Second
	RateLimitCleanupPeriod = 5 * time.Minute
)

// Paths skipped by request logging
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/static/",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
