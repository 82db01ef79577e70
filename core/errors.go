package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001

	// validation errors, rejected before any state mutation

	// ErrInvalidReserve reserve asset not registered or not active
	ErrInvalidReserve ErrorCode = 100100
	// ErrUnauthorizedMinter engine has no mint role on the synthetic asset
	ErrUnauthorizedMinter ErrorCode = 100101
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100102
	// ErrInsufficientAllowance liquidator allowance below liquidation cost
	ErrInsufficientAllowance ErrorCode = 100103
	// ErrInsufficientBalance balance below the requested amount
	ErrInsufficientBalance ErrorCode = 100104

	// insolvency errors, rejected with no mutation

	// ErrInsufficientMintingPower minting power exhausted
	ErrInsufficientMintingPower ErrorCode = 100200
	// ErrNoBalance position has no reserve or no debt to evaluate
	ErrNoBalance ErrorCode = 100201
	// ErrNotLiquidatable health ratio above the liquidation threshold
	ErrNotLiquidatable ErrorCode = 100202

	// oracle errors, fatal to the current call

	// ErrInvalidPrice zero or missing oracle price
	ErrInvalidPrice ErrorCode = 100300

	// arithmetic guards

	// ErrNoDebt health ratio undefined for a zero-debt position
	ErrNoDebt ErrorCode = 100400
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
