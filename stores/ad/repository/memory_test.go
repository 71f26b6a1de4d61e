package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
)

func TestMemoryEngagementLifecycle(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	now := time.Now()
	im := NewMemory(
		&ad.Ad{Id: "old", Timestamp: now.Add(-time.Hour)},
		&ad.Ad{Id: "new", Timestamp: now},
	)

	all, err := im.FindAll(c)
	req.NoError(err)
	req.Equal("new", all[0].Id)
	req.Equal("old", all[1].Id)

	_, err = im.FindEngaged(c, wallet)
	req.ErrorIs(err, domain.ErrNotFound)

	req.NoError(im.AddEngagement(c, "old", wallet))
	req.NoError(im.AddEngagement(c, "old", wallet))
	a, err := im.FindOne(c, "old")
	req.NoError(err)
	req.Equal([]domain.Pubkey{wallet}, a.EngagedUsers)

	found, err := im.FindEngaged(c, wallet)
	req.NoError(err)
	req.Equal("old", found.Id)

	req.NoError(im.ConsumeEngagement(c, "old", wallet))
	a, _ = im.FindOne(c, "old")
	req.False(a.HasEngaged(wallet))
	req.True(a.HasUsed(wallet))

	n, err := im.CountUsed(c, wallet)
	req.NoError(err)
	req.Equal(1, n)

	// a consumed engagement cannot be consumed twice nor re-added
	req.ErrorIs(im.ConsumeEngagement(c, "old", wallet), domain.ErrNotFound)
	req.ErrorIs(im.AddEngagement(c, "old", wallet), domain.ErrNotFound)
	req.ErrorIs(im.AddEngagement(c, "missing", wallet), domain.ErrNotFound)
}

func TestMemoryReturnsCopies(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	im := NewMemory(&ad.Ad{Id: "a"})

	a, _ := im.FindOne(c, "a")
	a.EngagedUsers = append(a.EngagedUsers, wallet)

	b, _ := im.FindOne(c, "a")
	req.Empty(b.EngagedUsers)
	req.ErrorIs(im.Create(c, &ad.Ad{Id: "a"}), domain.ErrConflict)
}
