package enums

import (
	"errors"
	"fmt"
)

var ErrInvalidTimeFormat = errors.New("invalid time format")

type TimeFormat string

const (
	TimeFormatInvalid TimeFormat = ""

	// TimeFormatLocale renders an absolute date and time using the configured
	// locale and time zone, e.g. "10/14/26, 13:45:00".
	TimeFormatLocale TimeFormat = "locale"

	// TimeFormatConcise renders the time elapsed since the timestamp,
	// e.g. "3 hours ago".
	TimeFormatConcise TimeFormat = "concise"
)

func ParseTimeFormat(s string) (TimeFormat, error) {
	switch f := TimeFormat(s); f {
	case TimeFormatLocale, TimeFormatConcise:
		return f, nil
	}
	return TimeFormatInvalid, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}
