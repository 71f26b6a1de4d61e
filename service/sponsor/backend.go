package sponsor

import (
	"golang.org/x/xerrors"
)

// CheckBackend refuses a remote sponsor with in-memory ads. Engagements
// recorded by the remote service would never reach the ads the transfer gate
// reads, so every transfer would be refused.
func CheckBackend(sponsorUrl, mongoUri string) error {
	if sponsorUrl != "" && mongoUri == "" {
		return xerrors.New("sponsor.url needs mongo.uri pointing at the ads collection the sponsor service writes")
	}
	return nil
}
