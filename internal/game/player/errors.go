package player

import "errors"

// Precondition failures. Always recoverable: the caller surfaces a message
// and state stays unchanged.
var (
	ErrInsufficientFunds     = errors.New("player: insufficient coins")
	ErrAlreadyOwned          = errors.New("player: upgrade already owned")
	ErrSkillAlreadyUnlocked  = errors.New("player: skill already unlocked")
	ErrPredecessorMissing    = errors.New("player: required skill not unlocked")
	ErrLevelTooLow           = errors.New("player: level requirement not met")
	ErrInsufficientResources = errors.New("player: not enough coins or gems")
	ErrUnknownItem           = errors.New("player: unknown shop item")
	ErrUnknownSkill          = errors.New("player: unknown skill")
	ErrNoGems                = errors.New("player: no gems of that color")
)
