package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
)

type impl struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

// New signs session tokens valid for ttl
func New(jwtSecret string, ttl time.Duration) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, sessionId string, owner domain.Pubkey, network domain.Network) (string, error) {
	now := im.now()
	claims := domain.SessionClaims{
		SessionId: sessionId,
		Pubkey:    owner,
		Network:   network,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(im.ttl).Unix(),
			Subject:   owner.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (*domain.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(str, &domain.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.SessionClaims); ok && token.Valid && len(claims.SessionId) > 0 {
			return claims, nil
		}
	}

	return nil, xerrors.Errorf("%v: %w", err, domain.ErrUnauthenticated)
}
