package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMode  = errors.New("unknown mode")
	ErrUnknownScope = errors.New("unknown scope")
)

type Mode string

const (
	ModeOverall Mode = "overall"
	Mode1v1     Mode = "1v1"
	Mode2v2     Mode = "2v2"
)

// TeamSize is the strict side size of the mode; 0 means any size.
func (m Mode) TeamSize() int {
	switch m {
	case Mode1v1:
		return 1
	case Mode2v2:
		return 2
	default:
		return 0
	}
}

// ParseMode accepts an empty string as overall.
func ParseMode(s string) (Mode, error) {
	switch v := Mode(strings.ToLower(strings.TrimSpace(s))); v {
	case "", ModeOverall:
		return ModeOverall, nil
	case Mode1v1, Mode2v2:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Scope selects which feeds take part in a computation.
type Scope string

const (
	ScopeTournaments Scope = "tournaments"
	ScopeBoth        Scope = "both"
	ScopeFriendlies  Scope = "friendlies"
)

func (s Scope) IncludesTournaments() bool {
	return s == ScopeTournaments || s == ScopeBoth
}

func (s Scope) IncludesFriendlies() bool {
	return s == ScopeFriendlies || s == ScopeBoth
}

// ParseScope returns fallback for an empty string.
func ParseScope(s string, fallback Scope) (Scope, error) {
	switch v := Scope(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return fallback, nil
	case ScopeTournaments, ScopeBoth, ScopeFriendlies:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScope, s)
	}
}
