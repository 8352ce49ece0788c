package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

type AdminClaims struct {
	jwt.RegisteredClaims
	Subject string
}

// GenerateAdminJWT выписывает токен доступа к админскому API. Токены выдаются
// оффлайн (командой оператора), сессий и логина по паролю нет.
func GenerateAdminJWT(subject string, expire time.Duration, key []byte) (string, error) {
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		Subject: subject,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating admin jwt token: %s", err.Error())
	}
	return tokenString, nil
}

func ValidateAdminJWT(tokenString string, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(AdminClaims), func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing admin jwt token: %w", err)
	}

	if _, ok := token.Claims.(*AdminClaims); !ok {
		return nil, errors.New("invalid claims")
	}
	return token, nil
}
