// File: utils/constants.go
package utils

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "tb_session"

// InFlightPrefix is the prefix used for Redis in-flight guard keys.
const InFlightPrefix = "inflight:"
