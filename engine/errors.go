package engine

import "errors"

// Rejection reasons returned by the Try* operations
// The event-driven paths log these at debug and carry on
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOutOfRange        = errors.New("target out of range")
	ErrOnCooldown        = errors.New("weapon on cooldown")
	ErrNotInCombat       = errors.New("not in combat mode")
	ErrCellOccupied      = errors.New("cell occupied")
	ErrOutOfBounds       = errors.New("outside the arena")
	ErrUpgradeMaxed      = errors.New("upgrade at maximum")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
)
