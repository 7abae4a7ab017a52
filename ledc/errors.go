package ledc

import "errors"

var (
	// Channel operation errors. Configure propagates these unchanged.
	ErrDuty    = errors.New("invalid_duty")           // fraction > 1.0 or quantizes to zero
	ErrTimer   = errors.New("timer_not_configured")   // bound timer has no usable resolution
	ErrChannel = errors.New("channel_not_configured") // no timer ever bound

	// Slot bookkeeping
	ErrChannelInUse   = errors.New("channel_in_use")
	ErrTimerInUse     = errors.New("timer_in_use")
	ErrUnknownChannel = errors.New("unknown_channel")
	ErrUnknownTimer   = errors.New("unknown_timer")

	// Timer configuration
	ErrResolution = errors.New("invalid_resolution")
	ErrDivider    = errors.New("unreachable_frequency")

	// Register block handout
	ErrBlockClaimed = errors.New("register_block_claimed")
)
