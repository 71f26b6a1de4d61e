package chain

import (
	"encoding/base64"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/backoff"
	bCtx "github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/base/metrics"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/chain"
)

const (
	defaultConfirmTimeout  = 60 * time.Second
	defaultConfirmInterval = 500 * time.Millisecond
	maxConfirmInterval     = 4 * time.Second
)

var met = metrics.New("ledger")

type NetworkCfg struct {
	Name    domain.Network
	Label   string
	RpcUrl  string
	Default bool
}

type ClientCfg struct {
	Networks        []NetworkCfg
	Keystore        *Keystore
	Commitment      chain.ConfirmationStatus
	ConfirmTimeout  time.Duration
	ConfirmInterval time.Duration
	// MaxConcurrency bounds in-flight requests per network
	MaxConcurrency int
}

type clientImpl struct {
	networks        []chain.NetworkInfo
	rpcs            map[domain.Network]RpcCaller
	keystore        *Keystore
	commitment      chain.ConfirmationStatus
	confirmTimeout  time.Duration
	confirmInterval time.Duration
}

// NewClient dials every configured network. A network that fails to dial is
// logged and left out, the first error is returned alongside the client.
func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (chain.Ledger, error) {
	var anyerr error
	rpcs := map[domain.Network]RpcCaller{}
	for _, n := range cfg.Networks {
		caller, err := dial(ctx, n.RpcUrl)
		if err != nil {
			if anyerr == nil {
				anyerr = err
			}
			ctx.WithFields(log.Fields{
				"err":     err,
				"network": n.Name,
				"url":     n.RpcUrl,
			}).Warn("failed to dial rpc")
			continue
		}
		rpcs[n.Name] = caller
	}
	return newClient(cfg, rpcs), anyerr
}

func newClient(cfg *ClientCfg, callers map[domain.Network]RpcCaller) *clientImpl {
	im := &clientImpl{
		rpcs:            map[domain.Network]RpcCaller{},
		keystore:        cfg.Keystore,
		commitment:      cfg.Commitment,
		confirmTimeout:  cfg.ConfirmTimeout,
		confirmInterval: cfg.ConfirmInterval,
	}
	if im.keystore == nil {
		im.keystore = NewKeystore()
	}
	if im.commitment == "" {
		im.commitment = chain.StatusConfirmed
	}
	if im.confirmTimeout <= 0 {
		im.confirmTimeout = defaultConfirmTimeout
	}
	if im.confirmInterval <= 0 {
		im.confirmInterval = defaultConfirmInterval
	}
	for _, n := range cfg.Networks {
		caller, ok := callers[n.Name]
		if !ok {
			continue
		}
		im.rpcs[n.Name] = newThrottledRpc(caller, cfg.MaxConcurrency)
		im.networks = append(im.networks, chain.NetworkInfo{Name: n.Name, Label: n.Label, Default: n.Default})
	}
	return im
}

func (im *clientImpl) Networks() []chain.NetworkInfo {
	return append([]chain.NetworkInfo(nil), im.networks...)
}

func (im *clientImpl) rpcOf(network domain.Network) (RpcCaller, error) {
	caller, ok := im.rpcs[network]
	if !ok {
		return nil, xerrors.Errorf("%s: %w", network, domain.ErrInvalidNetwork)
	}
	return caller, nil
}

func (im *clientImpl) GetBalance(ctx bCtx.Ctx, network domain.Network, owner domain.Pubkey) (uint64, error) {
	defer met.BumpTime("balance.time", "network", string(network)).End()
	caller, err := im.rpcOf(network)
	if err != nil {
		return 0, err
	}
	if _, err := solana.PublicKeyFromBase58(owner.String()); err != nil {
		return 0, xerrors.Errorf("owner %q: %w", owner, domain.ErrBadParamInput)
	}

	res := balanceResult{}
	if err := caller.CallContext(ctx, &res, "getBalance", owner.String(), map[string]interface{}{
		"commitment": im.commitment,
	}); err != nil {
		ctx.WithFields(log.Fields{"err": err, "owner": owner}).Error("getBalance failed")
		return 0, err
	}
	return res.Value, nil
}

func (im *clientImpl) Transfer(ctx bCtx.Ctx, network domain.Network, from, to domain.Pubkey, lamports uint64) (*chain.Receipt, error) {
	defer met.BumpTime("transfer.time", "network", string(network)).End()
	ctx = bCtx.WithValues(ctx, map[string]interface{}{
		"network":  network,
		"from":     from,
		"to":       to,
		"lamports": lamports,
	})

	caller, err := im.rpcOf(network)
	if err != nil {
		return nil, err
	}
	signer, ok := im.keystore.signer(from)
	if !ok {
		return nil, xerrors.Errorf("no key for %s: %w", from, domain.ErrWalletNotConnected)
	}
	recipient, err := solana.PublicKeyFromBase58(to.String())
	if err != nil {
		return nil, xerrors.Errorf("%q: %w", to, domain.ErrInvalidRecipient)
	}
	if lamports == 0 {
		return nil, domain.ErrInvalidAmount
	}

	bh := blockhashResult{}
	if err := caller.CallContext(ctx, &bh, "getLatestBlockhash", map[string]interface{}{
		"commitment": im.commitment,
	}); err != nil {
		ctx.WithField("err", err).Error("getLatestBlockhash failed")
		return nil, xerrors.Errorf("getLatestBlockhash: %v: %w", err, domain.ErrTransferFailed)
	}
	blockhash, err := solana.HashFromBase58(bh.Value.Blockhash)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "blockhash": bh.Value.Blockhash}).Error("invalid blockhash")
		return nil, xerrors.Errorf("blockhash: %v: %w", err, domain.ErrTransferFailed)
	}

	payer := signer.PublicKey()
	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(lamports, payer, recipient).Build()},
		blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		ctx.WithField("err", err).Error("solana.NewTransaction failed")
		return nil, xerrors.Errorf("build: %v: %w", err, domain.ErrTransferFailed)
	}
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payer) {
			return &signer
		}
		return nil
	}); err != nil {
		ctx.WithField("err", err).Error("tx.Sign failed")
		return nil, xerrors.Errorf("sign: %v: %w", err, domain.ErrTransferFailed)
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		ctx.WithField("err", err).Error("tx.MarshalBinary failed")
		return nil, xerrors.Errorf("encode: %v: %w", err, domain.ErrTransferFailed)
	}

	signature := ""
	if err := caller.CallContext(ctx, &signature, "sendTransaction", base64.StdEncoding.EncodeToString(raw), map[string]interface{}{
		"encoding":            "base64",
		"preflightCommitment": im.commitment,
	}); err != nil {
		met.BumpSum("transfer.err", 1, "network", string(network), "stage", "send")
		ctx.WithField("err", err).Error("sendTransaction failed")
		return nil, xerrors.Errorf("sendTransaction: %v: %w", err, domain.ErrTransferFailed)
	}
	ctx = bCtx.WithValue(ctx, "signature", signature)
	ctx.Info("transaction sent")

	status, err := im.confirm(ctx, caller, signature)
	if err != nil {
		met.BumpSum("transfer.err", 1, "network", string(network), "stage", "confirm")
		return nil, err
	}
	ctx.WithField("slot", status.Slot).Info("transaction confirmed")

	return &chain.Receipt{
		Signature:   signature,
		Network:     network,
		From:        from,
		To:          to,
		Lamports:    lamports,
		Slot:        status.Slot,
		Status:      chain.ConfirmationStatus(status.ConfirmationStatus),
		ConfirmedAt: time.Now(),
	}, nil
}

func (im *clientImpl) reached(status string) bool {
	switch chain.ConfirmationStatus(status) {
	case chain.StatusFinalized:
		return true
	case chain.StatusConfirmed:
		return im.commitment != chain.StatusFinalized
	case chain.StatusProcessed:
		return im.commitment == chain.StatusProcessed
	}
	return false
}

// confirm polls the signature status until it reaches the commitment level
func (im *clientImpl) confirm(ctx bCtx.Ctx, caller RpcCaller, signature string) (*signatureStatus, error) {
	c, cancel := bCtx.WithTimeout(ctx, im.confirmTimeout)
	defer cancel()

	var status *signatureStatus
	b := backoff.NewExponential(im.confirmInterval, maxConfirmInterval)
	err := b.Poll(c, func() (bool, error) {
		res := signatureStatusesResult{}
		if err := caller.CallContext(c, &res, "getSignatureStatuses", []string{signature}, map[string]interface{}{
			"searchTransactionHistory": true,
		}); err != nil {
			// transient, keep polling until the deadline
			c.WithField("err", err).Warn("getSignatureStatuses failed")
			return false, nil
		}
		if len(res.Value) == 0 || res.Value[0] == nil {
			return false, nil
		}
		status = res.Value[0]
		if status.Err != nil {
			c.WithField("txErr", status.Err).Error("transaction failed")
			return false, xerrors.Errorf("transaction %s failed: %v: %w", signature, status.Err, domain.ErrTransferFailed)
		}
		return im.reached(status.ConfirmationStatus), nil
	})
	if err != nil {
		if xerrors.Is(err, domain.ErrTransferFailed) {
			return nil, err
		}
		ctx.WithFields(log.Fields{"err": err, "polls": b.Count()}).Error("confirmation timed out")
		return nil, xerrors.Errorf("transaction %s not confirmed: %v: %w", signature, err, domain.ErrTransferFailed)
	}
	return status, nil
}
