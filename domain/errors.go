package domain

import "errors"

var (
	// ErrNotFound will throw if the requested listing does not exist
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrInvalidParameters will throw if the given request-body or params is not valid
	ErrInvalidParameters = errors.New("Given Param is not valid")
	// ErrDuplicateActiveListing will throw when creating a listing for an
	// asset that already has an active one
	ErrDuplicateActiveListing = errors.New("active listing already exists for asset")
	// ErrAuctionEnded will throw when operating on a terminal listing
	ErrAuctionEnded = errors.New("auction already ended")
	// ErrUnauthorized will throw if the caller lacks the required role
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrInsufficientPayment will throw if the offered payment is below the
	// current price
	ErrInsufficientPayment = errors.New("payment below current price")
	// ErrOracleUnavailable will throw when the price feed answer is stale or
	// non-positive
	ErrOracleUnavailable = errors.New("price oracle unavailable")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")

	ErrInvalidNumberFormat = errors.New("invalid number format")
)
