package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func NewAccessToken(subject string, exp time.Time, secret []byte) (string, error) {
	claims := AccessClaims{
		Type: TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        NewJTI(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func AccessClaimsFromToken(tokenStr string, secret []byte) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, keyFunc(secret))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.Type != TypeAccess {
		return nil, ErrWrongTokenType
	}
	return &claims, nil
}
