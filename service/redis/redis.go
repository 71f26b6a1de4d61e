package redis

import (
	"errors"
	"time"

	"github.com/gaslex/goapi/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
	// ErrNotSet is returned by SetNX when the key already exists
	ErrNotSet = errors.New("redis key already exists")
)

// Forever as expire means the key never expires
const Forever = time.Duration(0)

// Service wraps the redis commands this service needs
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only if it does not exist yet
	SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining time to live in seconds
	TTL(c ctx.Ctx, key string) (int, error)

	Name() string
	Ping(c ctx.Ctx) error
}
