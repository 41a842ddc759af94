// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 24 * time.Hour

// AuthTokenKey builds the auth cache key for an operator's session token hash.
func AuthTokenKey(operatorID string) string {
	return AuthCachePrefix + operatorID
}
