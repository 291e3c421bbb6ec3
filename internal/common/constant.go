// Package common contains shared constants, sentinel errors and small helpers
// used across SkillSphere client components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the credential in the Authorization header value.
const BearerPrefix = "Bearer "

// Storage keys used for durable client-side preferences.
const (
	TokenKey = "token"
	ThemeKey = "theme"
)
