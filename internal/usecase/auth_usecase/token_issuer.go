package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// HS256でアクセストークンを作る
type JWTIssuer struct {
	secret    []byte
	accessTTL time.Duration
	idGen     IDGenerator
}

func NewJWTIssuer(secret string, accessTTL time.Duration, idGen IDGenerator) *JWTIssuer {
	return &JWTIssuer{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		idGen:     idGen,
	}
}

// subはusername
func (i *JWTIssuer) Issue(username string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": username,
		"jti": i.idGen.NewID(),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
