package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/goroutine"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/base/validator"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/domain/chain"
	"github.com/gaslex/goapi/domain/keys"
	"github.com/gaslex/goapi/domain/wallet"
	"github.com/gaslex/goapi/service/cache"
)

const (
	defaultRefreshInterval = 30 * time.Second
	defaultSessionTtl      = 24 * time.Hour
	defaultSweepInterval   = time.Minute
	balanceDecimals        = 4
)

type Cfg struct {
	Repo     wallet.SessionRepo
	Ledger   chain.Ledger
	Keystore chain.Keystore
	// BalanceCache holds the last lamports read per network and wallet
	BalanceCache    cache.Service
	RefreshInterval time.Duration
	SessionTtl      time.Duration
	SweepInterval   time.Duration
}

type impl struct {
	repo            wallet.SessionRepo
	ledger          chain.Ledger
	keystore        chain.Keystore
	balanceCache    cache.Service
	refreshInterval time.Duration
	sessionTtl      time.Duration
	now             func() time.Time

	mu         sync.Mutex
	refreshers map[string]func()
	wg         sync.WaitGroup
	stopSweep  func()
}

// New starts a sweeper that disconnects expired sessions. Close stops it
// together with every balance refresher.
func New(c ctx.Ctx, cfg *Cfg) wallet.Usecase {
	im := &impl{
		repo:            cfg.Repo,
		ledger:          cfg.Ledger,
		keystore:        cfg.Keystore,
		balanceCache:    cfg.BalanceCache,
		refreshInterval: cfg.RefreshInterval,
		sessionTtl:      cfg.SessionTtl,
		now:             time.Now,
		refreshers:      map[string]func(){},
	}
	if im.refreshInterval <= 0 {
		im.refreshInterval = defaultRefreshInterval
	}
	if im.sessionTtl <= 0 {
		im.sessionTtl = defaultSessionTtl
	}
	sweepInterval := cfg.SweepInterval
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}

	sc, cancel := ctx.WithCancel(ctx.Detach(c))
	im.stopSweep = cancel
	im.every(sc, sweepInterval, im.sweep)
	return im
}

func (im *impl) Connect(c ctx.Ctx, owner domain.Pubkey, network domain.Network) (*wallet.Session, error) {
	if !validator.IsValidPubkey(owner.String()) {
		return nil, xerrors.Errorf("pubkey %q: %w", owner, domain.ErrBadParamInput)
	}
	network, err := im.resolveNetwork(network)
	if err != nil {
		return nil, err
	}
	if !im.keystore.Has(owner) {
		return nil, xerrors.Errorf("no key for %s: %w", owner, domain.ErrWalletNotConnected)
	}

	now := im.now()
	s := &wallet.Session{
		Id:        uuid.New().String(),
		Pubkey:    owner,
		Network:   network,
		Ads:       []*ad.Ad{},
		CreatedAt: now,
		ExpiresAt: now.Add(im.sessionTtl),
	}
	if err := im.repo.Create(c, s); err != nil {
		c.WithField("err", err).Error("repo.Create failed")
		return nil, err
	}

	c = ctx.WithValue(c, "sessionId", s.Id)
	if res, err := im.RefreshBalance(c, s.Id); err != nil {
		c.WithField("err", err).Warn("initial RefreshBalance failed")
	} else {
		s = res
	}
	im.startRefresher(c, s.Id)

	c.WithFields(log.Fields{
		"pubkey":  owner,
		"network": network,
	}).Info("wallet connected")
	return s, nil
}

func (im *impl) resolveNetwork(network domain.Network) (domain.Network, error) {
	networks := im.ledger.Networks()
	for _, n := range networks {
		if (len(network) == 0 && n.Default) || n.Name == network {
			return n.Name, nil
		}
	}
	if len(network) == 0 && len(networks) > 0 {
		return networks[0].Name, nil
	}
	return "", xerrors.Errorf("%q: %w", network, domain.ErrInvalidNetwork)
}

func (im *impl) Disconnect(c ctx.Ctx, id string) error {
	im.stopRefresher(id)
	if err := im.repo.Delete(c, id); xerrors.Is(err, domain.ErrNotFound) {
		return xerrors.Errorf("session %s: %w", id, domain.ErrWalletNotConnected)
	} else if err != nil {
		c.WithField("err", err).Error("repo.Delete failed")
		return err
	}
	c.WithField("sessionId", id).Info("wallet disconnected")
	return nil
}

func (im *impl) Get(c ctx.Ctx, id string) (*wallet.Session, error) {
	s, err := im.repo.Get(c, id)
	if xerrors.Is(err, domain.ErrNotFound) {
		return nil, xerrors.Errorf("session %s: %w", id, domain.ErrWalletNotConnected)
	} else if err != nil {
		c.WithField("err", err).Error("repo.Get failed")
		return nil, err
	}
	if !s.ExpiresAt.IsZero() && !im.now().Before(s.ExpiresAt) {
		if err := im.Disconnect(c, id); err != nil {
			c.WithField("err", err).Warn("Disconnect expired session failed")
		}
		return nil, xerrors.Errorf("session %s expired: %w", id, domain.ErrWalletNotConnected)
	}
	return s, nil
}

// RefreshBalance reads the balance from the ledger, bypassing the cache,
// and stores it on the session and in the cache
func (im *impl) RefreshBalance(c ctx.Ctx, id string) (*wallet.Session, error) {
	s, err := im.Get(c, id)
	if err != nil {
		return nil, err
	}

	lamports, err := im.ledger.GetBalance(c, s.Network, s.Pubkey)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"pubkey":  s.Pubkey,
			"network": s.Network,
		}).Error("ledger.GetBalance failed")
		return nil, err
	}
	if im.balanceCache != nil {
		if err := im.balanceCache.Set(c, balanceKey(s.Network, s.Pubkey), &lamports); err != nil {
			c.WithField("err", err).Warn("balanceCache.Set failed")
		}
	}

	return im.setBalance(c, id, lamports)
}

// cachedBalance serves the balance from the cache and falls back to the
// ledger on a miss
func (im *impl) cachedBalance(c ctx.Ctx, s *wallet.Session) (uint64, error) {
	if im.balanceCache == nil {
		return im.ledger.GetBalance(c, s.Network, s.Pubkey)
	}
	var lamports uint64
	err := im.balanceCache.GetByFunc(c, balanceKey(s.Network, s.Pubkey), &lamports, func() (interface{}, error) {
		v, err := im.ledger.GetBalance(c, s.Network, s.Pubkey)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
	return lamports, err
}

func (im *impl) setBalance(c ctx.Ctx, id string, lamports uint64) (*wallet.Session, error) {
	return im.repo.Update(c, id, func(s *wallet.Session) error {
		s.Lamports = lamports
		s.Balance = chain.LamportsToSol(lamports).StringFixed(balanceDecimals)
		s.BalanceUpdatedAt = im.now()
		return nil
	})
}

func (im *impl) Acquire(c ctx.Ctx, id string) (*wallet.Session, error) {
	if _, err := im.Get(c, id); err != nil {
		return nil, err
	}
	s, err := im.repo.TryAcquire(c, id)
	if xerrors.Is(err, domain.ErrNotFound) {
		return nil, xerrors.Errorf("session %s: %w", id, domain.ErrWalletNotConnected)
	}
	return s, err
}

func (im *impl) Release(c ctx.Ctx, id string) {
	if err := im.repo.Release(c, id); err != nil && !xerrors.Is(err, domain.ErrNotFound) {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": id,
		}).Error("repo.Release failed")
	}
}

func (im *impl) SetAds(c ctx.Ctx, id string, ads []*ad.Ad) error {
	_, err := im.repo.Update(c, id, func(s *wallet.Session) error {
		s.Ads = ads
		return nil
	})
	if xerrors.Is(err, domain.ErrNotFound) {
		return xerrors.Errorf("session %s: %w", id, domain.ErrWalletNotConnected)
	}
	return err
}

func (im *impl) RecordHistory(c ctx.Ctx, id string, entry *wallet.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = im.now()
	}
	_, err := im.repo.Update(c, id, func(s *wallet.Session) error {
		s.History = append(s.History, entry)
		return nil
	})
	if xerrors.Is(err, domain.ErrNotFound) {
		return xerrors.Errorf("session %s: %w", id, domain.ErrWalletNotConnected)
	}
	return err
}

// History returns the session entries newest first
func (im *impl) History(c ctx.Ctx, id string) ([]*wallet.HistoryEntry, error) {
	s, err := im.Get(c, id)
	if err != nil {
		return nil, err
	}
	res := make([]*wallet.HistoryEntry, 0, len(s.History))
	for i := len(s.History) - 1; i >= 0; i-- {
		res = append(res, s.History[i])
	}
	return res, nil
}

func (im *impl) Close() {
	im.stopSweep()
	im.mu.Lock()
	for id, stop := range im.refreshers {
		stop()
		delete(im.refreshers, id)
	}
	im.mu.Unlock()
	im.wg.Wait()
}

func (im *impl) startRefresher(c ctx.Ctx, id string) {
	rc, cancel := ctx.WithCancel(ctx.Detach(c))
	im.mu.Lock()
	im.refreshers[id] = cancel
	im.mu.Unlock()

	im.every(rc, im.refreshInterval, func(rc ctx.Ctx) {
		s, err := im.Get(rc, id)
		if err != nil {
			im.stopRefresher(id)
			return
		}
		lamports, err := im.cachedBalance(rc, s)
		if err != nil {
			rc.WithField("err", err).Warn("balance refresh failed")
			return
		}
		if _, err := im.setBalance(rc, id, lamports); err != nil {
			rc.WithField("err", err).Warn("setBalance failed")
		}
	})
}

func (im *impl) stopRefresher(id string) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if stop, ok := im.refreshers[id]; ok {
		stop()
		delete(im.refreshers, id)
	}
}

func (im *impl) sweep(c ctx.Ctx) {
	ids, err := im.repo.FindExpired(c, im.now())
	if err != nil {
		c.WithField("err", err).Error("repo.FindExpired failed")
		return
	}
	for _, id := range ids {
		if err := im.Disconnect(c, id); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"sessionId": id,
			}).Warn("Disconnect expired session failed")
		}
	}
}

// every runs fn on each tick until c is cancelled
func (im *impl) every(c ctx.Ctx, interval time.Duration, fn func(ctx.Ctx)) {
	im.wg.Add(1)
	goroutine.RecoverableGo(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.Done():
				return
			case <-ticker.C:
				fn(c)
			}
		}
	}, goroutine.WithAfterEnded(im.wg.Done), goroutine.WithLogger(c.Logger))
}

func balanceKey(network domain.Network, owner domain.Pubkey) string {
	return keys.RedisKey(string(network), owner.String())
}
