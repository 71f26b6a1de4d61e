package chain

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/domain"
)

// Keystore keeps the signing keys of the wallets the service may act for,
// indexed by their public key
type Keystore struct {
	keys map[domain.Pubkey]solana.PrivateKey
}

func NewKeystore(keys ...solana.PrivateKey) *Keystore {
	ks := &Keystore{keys: map[domain.Pubkey]solana.PrivateKey{}}
	for _, k := range keys {
		ks.keys[domain.Pubkey(k.PublicKey().String())] = k
	}
	return ks
}

// LoadKeystore reads every solana-keygen json file in dir
func LoadKeystore(dir string) (*Keystore, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, xerrors.Errorf("read keystore dir: %w", err)
	}
	keys := []solana.PrivateKey{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		k, err := solana.PrivateKeyFromSolanaKeygenFile(path)
		if err != nil {
			return nil, xerrors.Errorf("load %s: %w", path, err)
		}
		keys = append(keys, k)
	}
	ks := NewKeystore(keys...)
	log.Log().WithFields(log.Fields{"dir": dir, "wallets": ks.Pubkeys()}).Info("keystore loaded")
	return ks, nil
}

func (ks *Keystore) Has(owner domain.Pubkey) bool {
	_, ok := ks.keys[owner]
	return ok
}

func (ks *Keystore) Pubkeys() []domain.Pubkey {
	res := make([]domain.Pubkey, 0, len(ks.keys))
	for k := range ks.keys {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (ks *Keystore) signer(owner domain.Pubkey) (solana.PrivateKey, bool) {
	k, ok := ks.keys[owner]
	return k, ok
}
