package middleware

import (
	"net/http"
	"regexp"

	"timeback/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKey = "session"

var mobileUserAgent = regexp.MustCompile(`(?i)Mobi|Android`)

// SessionInfo is resolved once per browser session and read by handlers
// instead of inspecting request headers.
type SessionInfo struct {
	ID     string
	Mobile bool
}

// IsMobileUserAgent reports whether ua looks like a phone or tablet browser.
func IsMobileUserAgent(ua string) bool {
	return mobileUserAgent.MatchString(ua)
}

// SessionMiddleware reuses the claims of a valid session cookie or, on the
// first visit, classifies the device and issues a new signed cookie.
func SessionMiddleware(signer *utils.SessionSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(utils.SessionCookieName); err == nil && token != "" {
			if claims, err := signer.ParseToken(token); err == nil {
				c.Set(sessionKey, SessionInfo{ID: claims.ID, Mobile: claims.Mobile})
				c.Next()
				return
			}
		}

		info := SessionInfo{
			ID:     uuid.NewString(),
			Mobile: IsMobileUserAgent(c.GetHeader("User-Agent")),
		}
		token, err := signer.GenerateToken(utils.SessionClaims{ID: info.ID, Mobile: info.Mobile})
		if err != nil {
			zap.L().Warn("Failed to sign session token", zap.Error(err))
		} else {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(utils.SessionCookieName, token, int(signer.TTL().Seconds()), "/", "", c.Request.TLS != nil, true)
		}
		c.Set(sessionKey, info)
		c.Next()
	}
}

// GetSession returns the session resolved by SessionMiddleware. Requests
// that bypassed the middleware get a throwaway desktop session.
func GetSession(c *gin.Context) SessionInfo {
	if v, ok := c.Get(sessionKey); ok {
		if info, ok := v.(SessionInfo); ok {
			return info
		}
	}
	return SessionInfo{ID: uuid.NewString()}
}
