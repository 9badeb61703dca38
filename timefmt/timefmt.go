// Package timefmt renders Reddit epoch timestamps either as an absolute,
// locale-aware date and time or as a concise relative age ("3 hours ago").
//
// The locale and time zone are resolved once when a Formatter is built and
// never read from, or written to, process-wide state afterwards.
package timefmt

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/kova98/karmakaze/enums"
	"golang.org/x/text/language"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
	month  = 30 * day
	year   = 12 * month
)

type unit struct {
	below int64 // first elapsed value that no longer fits this unit
	size  int64
	name  string
}

var units = []unit{
	{minute, 1, "second"},
	{hour, minute, "minute"},
	{day, hour, "hour"},
	{week, day, "day"},
	{month, week, "week"},
	{year, month, "month"},
	{math.MaxInt64, year, "year"},
}

type Formatter struct {
	mode   enums.TimeFormat
	loc    *time.Location
	layout string
	now    func() time.Time
}

// New builds a Formatter. A nil loc means the local zone.
func New(mode enums.TimeFormat, loc *time.Location, locale language.Tag) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{
		mode:   mode,
		loc:    loc,
		layout: Layout(locale),
		now:    time.Now,
	}
}

// WithClock returns a copy of f that measures concise ages against now.
func (f *Formatter) WithClock(now func() time.Time) *Formatter {
	c := *f
	c.now = now
	return &c
}

func (f *Formatter) Mode() enums.TimeFormat {
	return f.mode
}

// Format renders an epoch-seconds value. It reports false for absent, zero
// and non-numeric values, and for an unrecognised mode.
func (f *Formatter) Format(v any) (string, bool) {
	ts, ok := epoch(v)
	if !ok {
		return "", false
	}

	switch f.mode {
	case enums.TimeFormatLocale:
		return f.locale(ts), true
	case enums.TimeFormatConcise:
		return f.concise(ts), true
	}
	return "", false
}

// Value is Format for record fields: the rendered string, or nil.
func (f *Formatter) Value(v any) any {
	if s, ok := f.Format(v); ok {
		return s
	}
	return nil
}

func (f *Formatter) locale(ts float64) string {
	sec, frac := math.Modf(ts)
	t := time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
	return t.In(f.loc).Format(f.layout)
}

func (f *Formatter) concise(ts float64) string {
	elapsed := f.now().Unix() - int64(ts)
	if elapsed < 0 {
		elapsed = 0
	}

	for _, u := range units {
		if elapsed >= u.below {
			continue
		}
		count := elapsed / u.size
		if count == 0 {
			return "just now"
		}
		label := u.name
		if count > 1 {
			label += "s"
		}
		return fmt.Sprintf("%d %s ago", count, label)
	}
	return "just now"
}

func epoch(v any) (float64, bool) {
	var ts float64
	switch n := v.(type) {
	case float64:
		ts = n
	case float32:
		ts = float64(n)
	case int:
		ts = float64(n)
	case int32:
		ts = float64(n)
	case int64:
		ts = float64(n)
	case uint:
		ts = float64(n)
	case uint32:
		ts = float64(n)
	case uint64:
		ts = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		ts = parsed
	default:
		return 0, false
	}

	if ts == 0 || math.IsNaN(ts) || math.IsInf(ts, 0) {
		return 0, false
	}
	return ts, true
}
