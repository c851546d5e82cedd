package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Skotchmaster/storefront/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// UserClaims carries the public user view. There is no exp claim: a token
// stays valid until the signing secret is rotated.
type UserClaims struct {
	User *models.PublicUser `json:"user"`
	jwt.RegisteredClaims
}

type Issuer struct {
	Secret []byte
}

func NewIssuer(secret []byte) *Issuer {
	return &Issuer{Secret: secret}
}

func (i *Issuer) Issue(user models.PublicUser) (string, error) {
	claims := UserClaims{
		User: &user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt: jwt.NewNumericDate(time.Now()),
			ID:       uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *Issuer) Verify(tokenStr string) (*models.PublicUser, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	var claims UserClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return i.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.User == nil || claims.User.ID == 0 {
		return nil, fmt.Errorf("%w: missing user payload", ErrInvalidToken)
	}
	return claims.User, nil
}

// BearerFromHeader returns the token material of an Authorization header,
// which is everything after the first space.
func BearerFromHeader(header string) (string, error) {
	_, token, found := strings.Cut(header, " ")
	if !found {
		return "", fmt.Errorf("%w: missing scheme prefix", ErrInvalidToken)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidToken)
	}
	return token, nil
}
