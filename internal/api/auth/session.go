package auth

import (
	"errors"
	"fmt"
	"time"

	"doris-art/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionCookie = "admin_session"
	SessionTTL    = 24 * time.Hour
)

var ErrInvalidSession = errors.New("invalid or expired session")

type SessionClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

func sessionKey() ([]byte, error) {
	key := []byte(config.ADMIN_SESSION_SECRET)
	if len(key) < config.MinSessionSecretLength {
		return nil, fmt.Errorf("ADMIN_SESSION_SECRET must be at least %d characters", config.MinSessionSecretLength)
	}
	return key, nil
}

// CheckPassword compares against the configured bcrypt hash.
func CheckPassword(password string) bool {
	if config.ADMIN_PASSWORD_HASH == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(config.ADMIN_PASSWORD_HASH), []byte(password)) == nil
}

func IssueSession(now time.Time) (string, error) {
	key, err := sessionKey()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	})
	return token.SignedString(key)
}

func VerifySession(tokenString string) (*SessionClaims, error) {
	key, err := sessionKey()
	if err != nil {
		return nil, err
	}
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid || !claims.Admin {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
