package chain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/gaslex/goapi/domain"
)

func writeKeygenFile(t *testing.T, dir, name string, k solana.PrivateKey) {
	ints := make([]int, len(k))
	for i, b := range k {
		ints[i] = int(b)
	}
	raw, err := json.Marshal(ints)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0600))
}

func TestLoadKeystore(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	a, b := solana.NewWallet(), solana.NewWallet()
	writeKeygenFile(t, dir, "a.json", a.PrivateKey)
	writeKeygenFile(t, dir, "b.json", b.PrivateKey)
	req.NoError(os.WriteFile(filepath.Join(dir, "README"), []byte("not a key"), 0600))

	ks, err := LoadKeystore(dir)
	req.NoError(err)
	req.True(ks.Has(domain.Pubkey(a.PublicKey().String())))
	req.True(ks.Has(domain.Pubkey(b.PublicKey().String())))
	req.False(ks.Has(domain.Pubkey(solana.NewWallet().PublicKey().String())))
	req.Len(ks.Pubkeys(), 2)

	k, ok := ks.signer(domain.Pubkey(a.PublicKey().String()))
	req.True(ok)
	req.True(k.PublicKey().Equals(a.PublicKey()))
}

func TestLoadKeystoreInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0600))
	_, err := LoadKeystore(dir)
	require.Error(t, err)

	_, err = LoadKeystore(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
