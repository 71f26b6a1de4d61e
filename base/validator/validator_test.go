package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidPubkey() {
	tests := []struct {
		desc       string
		pubkey     string
		expIsValid bool
	}{
		{
			desc:       "empty",
			pubkey:     "",
			expIsValid: false,
		},
		{
			desc:       "not base58",
			pubkey:     "0OIl",
			expIsValid: false,
		},
		{
			desc:       "ethereum address",
			pubkey:     "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: false,
		},
		{
			desc:       "treasury",
			pubkey:     "4WxHcApXLCLscq3JHkiNZpdvowu5oiiL9e5R4X8ZV6KE",
			expIsValid: true,
		},
		{
			desc:       "system program",
			pubkey:     "11111111111111111111111111111111",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidPubkey(t.pubkey), t.desc)
	}
}

func (s *ValidatorTestSuite) TestPubkeyTag() {
	type form struct {
		Recipient string `validate:"required,pubkey"`
	}
	v := NewCustomValidator(New())
	s.NoError(v.Validate(&form{"4WxHcApXLCLscq3JHkiNZpdvowu5oiiL9e5R4X8ZV6KE"}))
	s.Error(v.Validate(&form{"not-a-key"}))
	s.Error(v.Validate(&form{}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
