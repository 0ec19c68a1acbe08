package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the claim set carried inside an auth token.
type AuthTokenWrapper struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Secret string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	ttl := viper.GetDuration(constants.ViperTokenTTL)
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	wrapper.ExpiresAt = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", fmt.Errorf("failed to sign auth token: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
