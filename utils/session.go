package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionClaims is what the session cookie carries between requests.
type SessionClaims struct {
	ID     string
	Mobile bool
}

// SessionSigner issues and validates HS256 session tokens.
type SessionSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionSigner(secret string, ttl time.Duration) *SessionSigner {
	if secret == "" {
		secret = "TIMEBACK"
	}
	return &SessionSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *SessionSigner) TTL() time.Duration {
	return s.ttl
}

// GenerateToken creates a signed session token for the given claims.
func (s *SessionSigner) GenerateToken(sc SessionClaims) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":    sc.ID,
		"mobile": sc.Mobile,
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates a token string and returns its session claims.
func (s *SessionSigner) ParseToken(tokenString string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return SessionClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return SessionClaims{}, errors.New("token does not contain a valid 'sub' claim")
	}
	mobile, _ := claims["mobile"].(bool)

	return SessionClaims{ID: sub, Mobile: mobile}, nil
}
