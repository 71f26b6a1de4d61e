package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/wallet"
)

func TestSessionRepo(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	r := NewSessionRepo()

	req.NoError(r.Create(c, &wallet.Session{Id: "s1", Pubkey: "w"}))
	req.ErrorIs(r.Create(c, &wallet.Session{Id: "s1"}), domain.ErrConflict)

	s, err := r.Get(c, "s1")
	req.NoError(err)
	s.Lamports = 42
	s, _ = r.Get(c, "s1")
	req.Zero(s.Lamports)

	s, err = r.Update(c, "s1", func(s *wallet.Session) error {
		s.Lamports = 7
		return nil
	})
	req.NoError(err)
	req.Equal(uint64(7), s.Lamports)

	_, err = r.Get(c, "missing")
	req.ErrorIs(err, domain.ErrNotFound)

	req.NoError(r.Delete(c, "s1"))
	req.ErrorIs(r.Delete(c, "s1"), domain.ErrNotFound)
}

func TestSessionRepoBusyFlag(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	r := NewSessionRepo()
	req.NoError(r.Create(c, &wallet.Session{Id: "s1"}))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		acquired int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.TryAcquire(c, "s1"); err == nil {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	req.Equal(1, acquired)

	_, err := r.TryAcquire(c, "s1")
	req.ErrorIs(err, domain.ErrSessionBusy)

	req.NoError(r.Release(c, "s1"))
	_, err = r.TryAcquire(c, "s1")
	req.NoError(err)
}

func TestSessionRepoFindExpired(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	r := NewSessionRepo()
	now := time.Now()
	req.NoError(r.Create(c, &wallet.Session{Id: "old", ExpiresAt: now.Add(-time.Second)}))
	req.NoError(r.Create(c, &wallet.Session{Id: "new", ExpiresAt: now.Add(time.Hour)}))
	req.NoError(r.Create(c, &wallet.Session{Id: "forever"}))

	ids, err := r.FindExpired(c, now)
	req.NoError(err)
	req.Equal([]string{"old"}, ids)
}
