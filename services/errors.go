package services

import "errors"

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPlayerNotFound     = errors.New("player not found")

	ErrInvalidWindow    = errors.New("form window must be at least 1")
	ErrInvalidLastN     = errors.New("last n must not be negative")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrInvalidScope     = errors.New("invalid scope")
	ErrInvalidCategory  = errors.New("invalid streak category")
	ErrInvalidAnchor    = errors.New("invalid form anchor")
	ErrInvalidOrder     = errors.New("invalid rivalry order")
	ErrInvalidLegs      = errors.New("legs must be 1 or 2")
	ErrNotEnoughPlayers = errors.New("at least 2 registered players are required")
	ErrUnsupportedMode  = errors.New("operation not supported for this tournament mode")

	ErrCupNotConfigured      = errors.New("cup tracking is not configured")
	ErrSnapshotsDisabled     = errors.New("snapshot publishing is not configured")
	ErrSnapshotPublishFailed = errors.New("failed to publish snapshot")
)
