package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput   = errors.New("Given Param is not valid")
	ErrUnauthenticated = errors.New("Unauthenticated")

	// wallet and ledger
	ErrWalletNotConnected = errors.New("Please connect your wallet first")
	ErrInvalidNetwork     = errors.New("invalid network")
	ErrInvalidRecipient   = errors.New("invalid recipient address")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrSessionBusy        = errors.New("another operation is in progress")
	ErrTransferFailed     = errors.New("Failed to send SOL")

	// ad gating
	ErrNotEngaged  = errors.New("You must engage with at least one ad to send SOL.")
	ErrAlreadyUsed = errors.New("You have already used this ad. Please engage with another ad.")

	// ad submission
	ErrUploadFailed      = errors.New("Failed to upload ad content")
	ErrPersistenceFailed = errors.New("Failed to save ad data")
	ErrInvalidAdType     = errors.New("invalid ad type")
	ErrContentMismatch   = errors.New("content does not match ad type")
	ErrContentTooLarge   = errors.New("content too large")

	// remote sponsor service
	ErrSponsorRejected = errors.New("sponsor request was not successful")
)
