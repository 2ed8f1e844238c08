package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token inside the authorization header.
const BearerPrefix = "Bearer "

// TokenMetadataKey is the client metadata key under which the credential is stored.
const TokenMetadataKey = "token"
