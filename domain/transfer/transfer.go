package transfer

import (
	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain/chain"
)

type Request struct {
	Recipient string `json:"recipient" validate:"required,pubkey"`
	Amount    string `json:"amount" validate:"required"`
}

type Result struct {
	Receipt *chain.Receipt `json:"receipt"`
	AdId    string         `json:"adId"`
	Message string         `json:"message"`
}

type Usecase interface {
	// AttemptGatedTransfer sends SOL from the session wallet if the wallet
	// holds an unconsumed ad engagement, and consumes that engagement after
	// the transfer is confirmed.
	AttemptGatedTransfer(c ctx.Ctx, sessionId string, req *Request) (*Result, error)
}
