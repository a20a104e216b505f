package config

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/gobtop/pkg/errors"
)

const (
	// MinUpdateMs is the lowest accepted update_ms
	MinUpdateMs = 100
	// MaxUpdateMs is the highest accepted update_ms (one day)
	MaxUpdateMs = 86_400_000
)

// IsBool reports whether v is one of the accepted literal bool spellings
func IsBool(v string) bool {
	switch v {
	case "true", "false", "True", "False":
		return true
	}
	return false
}

// ParseBool is the lenient form used on values that already passed IsBool
func ParseBool(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

func parseInt32(v string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ValidateBool checks a raw value for a bool setting
func ValidateBool(key, v string) (bool, *errors.GobtopError) {
	if !IsBool(v) {
		return false, errors.Newf(errors.ErrInvalidBool, "Got an invalid bool value for config name: %s", key).
			WithDetail("key", key).
			WithDetail("value", v)
	}
	return ParseBool(v), nil
}

// ValidateInt checks a raw value for an int setting, including the per-key
// bounds
func ValidateInt(key, v string) (int, *errors.GobtopError) {
	n, err := parseInt32(v)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidNumber, "Got an invalid integer value for config name: %s", key).
			WithDetail("key", key).
			WithDetail("value", v)
	}

	if key == "update_ms" {
		switch {
		case n < MinUpdateMs:
			return 0, errors.Newf(errors.ErrValueTooLow, "Config value %s set too low (<%d).", key, MinUpdateMs).
				WithDetail("key", key).
				WithDetail("value", v)
		case n > MaxUpdateMs:
			return 0, errors.Newf(errors.ErrValueTooHigh, "Config value %s set too high (>%d).", key, MaxUpdateMs).
				WithDetail("key", key).
				WithDetail("value", v)
		}
	}
	return n, nil
}
