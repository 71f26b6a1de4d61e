package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/gaslex/goapi/base/ctx"
)

type SessionClaims struct {
	SessionId string  `json:"sid"`
	Pubkey    Pubkey  `json:"pubkey"`
	Network   Network `json:"network"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(c ctx.Ctx, sessionId string, owner Pubkey, network Network) (string, error)
	ParseToken(c ctx.Ctx, token string) (*SessionClaims, error)
}
