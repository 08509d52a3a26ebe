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
	ErrBadParamInput = errors.New("Given Param is not valid")

	// validation errors, rejected before any state mutation
	ErrInvalidFee     = errors.New("invalid platform fee")
	ErrInvalidRoyalty = errors.New("invalid royalty percentage")
	ErrInvalidUri     = errors.New("invalid metadata uri")
	ErrInvalidPrice   = errors.New("invalid price")

	// ErrUnauthorized will throw if the caller lacks required authority
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotForSale will throw if the listing is inactive or absent
	ErrNotForSale = errors.New("prompt not for sale")
	// ErrInsufficientFunds will throw if the buyer balance is below the listing price
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrArithmetic signals a fee configuration whose settlement would underflow.
	// Never clamped silently; the purchase aborts before any transfer.
	ErrArithmetic = errors.New("arithmetic error")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
