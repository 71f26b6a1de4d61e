package domain

import (
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Table names a mongo collection
type Table string

const (
	TableAds Table = "ads"
)

// Pubkey is a base58 encoded ed25519 public key identifying a wallet
type Pubkey string

func (p Pubkey) String() string {
	return string(p)
}

func (p Pubkey) IsEmpty() bool {
	return len(strings.TrimSpace(string(p))) == 0
}

// Network names a ledger cluster
type Network string

const (
	NetworkMainnet Network = "mainnet-beta"
	NetworkDevnet  Network = "devnet"
	NetworkTestnet Network = "testnet"
)

func (n Network) String() string {
	return string(n)
}

// TreasuryPubkey receives ad submission fees
const TreasuryPubkey = Pubkey("4WxHcApXLCLscq3JHkiNZpdvowu5oiiL9e5R4X8ZV6KE")
