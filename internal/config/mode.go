package config

import "fmt"

// Mode is the validation policy the app applies around the matcher.
// The engine itself never sees modes: skip bypasses invoking the
// matcher, warn converts a surfaced failure into a logged warning.
type Mode int

const (
	// ModeCheck validates and fails the run on mismatch.
	ModeCheck Mode = iota
	// ModeWarn validates, logs the failure, and continues.
	ModeWarn
	// ModeSkip bypasses validation entirely.
	ModeSkip
)

// ParseMode parses a mode string. The empty string means ModeCheck so
// callers can treat "unset" as the default policy.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "check":
		return ModeCheck, nil
	case "warn":
		return ModeWarn, nil
	case "skip":
		return ModeSkip, nil
	default:
		return ModeCheck, fmt.Errorf("invalid mode %q: must be 'check', 'warn', or 'skip'", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeWarn:
		return "warn"
	case ModeSkip:
		return "skip"
	default:
		return "check"
	}
}
