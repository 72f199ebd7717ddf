package common

// AuthorizationHeaderName is the HTTP header that carries the access token
// on requests to protected endpoints.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the optional scheme prefix in the authorization header.
// Comparison is case-sensitive with exactly one space, per RFC 6750 usage;
// clients that send the bare token are also accepted.
const BearerPrefix = "Bearer "
