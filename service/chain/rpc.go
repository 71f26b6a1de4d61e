package chain

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/gaslex/goapi/base/log"
)

// RpcCaller issues one JSON-RPC 2.0 request and decodes the result
type RpcCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// throttledRpc bounds the number of in-flight requests to one endpoint
type throttledRpc struct {
	RpcCaller
	tokens chan int
}

func newThrottledRpc(caller RpcCaller, n int) *throttledRpc {
	if n <= 0 {
		n = 1
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &throttledRpc{
		RpcCaller: caller,
		tokens:    tokens,
	}
}

func (c *throttledRpc) CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	token, err := c.before(ctx, method)
	if err != nil {
		return err
	}
	defer c.after(token)
	return c.RpcCaller.CallContext(ctx, result, method, args...)
}

func (c *throttledRpc) before(ctx context.Context, method string) (int, error) {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithFields(log.Fields{"method": method, "waited": time.Since(now)}).Warn("throttle ctx done")
		return 0, ctx.Err()
	case token := <-c.tokens:
		return token, nil
	}
}

func (c *throttledRpc) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}

func dial(ctx context.Context, url string) (RpcCaller, error) {
	return rpc.DialContext(ctx, url)
}

type rpcContext struct {
	Slot uint64 `json:"slot"`
}

type balanceResult struct {
	Context rpcContext `json:"context"`
	Value   uint64     `json:"value"`
}

type blockhashResult struct {
	Context rpcContext `json:"context"`
	Value   struct {
		Blockhash            string `json:"blockhash"`
		LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
	} `json:"value"`
}

type signatureStatus struct {
	Slot               uint64      `json:"slot"`
	Confirmations      *uint64     `json:"confirmations"`
	Err                interface{} `json:"err"`
	ConfirmationStatus string      `json:"confirmationStatus"`
}

type signatureStatusesResult struct {
	Context rpcContext         `json:"context"`
	Value   []*signatureStatus `json:"value"`
}
