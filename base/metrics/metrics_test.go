package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"network:devnet", "result:ok"}, parseTag([]string{"network", "devnet", "result", "ok"}))
	req.Equal([]string{"network:devnet"}, parseTag([]string{"network", "devnet", "dangling"}))
	req.Equal([]string{}, parseTag(nil))
}

func TestBumpWithoutAgent(t *testing.T) {
	m := New("test")
	m.BumpSum("transfer.count", 1, "network", "devnet")
	m.BumpAvg("balance", 0.5)
	m.BumpHistogram("size", 1024)
	m.BumpTime("transfer.time").End()
	require.IsType(t, &LogClient{}, client())
}
