package validator

import (
	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidPubkey returns whether s is a base58 encoded 32 byte public key
func IsValidPubkey(s string) bool {
	_, err := solana.PublicKeyFromBase58(s)
	return err == nil
}

// New returns a validator that also knows the "pubkey" tag
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("pubkey", func(fl validator.FieldLevel) bool {
		return IsValidPubkey(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
