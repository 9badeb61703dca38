package timefmt

import (
	"strings"

	"golang.org/x/text/language"
)

// CLayout is the "%x, %X" rendering of the C/POSIX locale.
const CLayout = "01/02/06, 15:04:05"

// Short "date, time" layouts. The first entry is the fallback.
var localeLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.Und, CLayout},
	{language.AmericanEnglish, "01/02/2006, 03:04:05 PM"},
	{language.BritishEnglish, "02/01/06, 15:04:05"},
	{language.German, "02.01.2006, 15:04:05"},
	{language.French, "02/01/2006, 15:04:05"},
	{language.Spanish, "02/01/06, 15:04:05"},
	{language.Italian, "02/01/2006, 15:04:05"},
	{language.BrazilianPortuguese, "02/01/2006, 15:04:05"},
	{language.Dutch, "02-01-06, 15:04:05"},
	{language.Russian, "02.01.2006, 15:04:05"},
	{language.Polish, "02.01.2006, 15:04:05"},
	{language.Swedish, "2006-01-02, 15:04:05"},
	{language.Japanese, "2006年01月02日, 15時04分05秒"},
	{language.Chinese, "2006年01月02日, 15时04分05秒"},
	{language.Korean, "2006년 01월 02일, 15시 04분 05초"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(localeLayouts))
	for i, l := range localeLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// Layout returns the Go time layout for the locale's short date and time.
func Layout(locale language.Tag) string {
	if locale == language.Und {
		return CLayout
	}
	_, idx, conf := matcher.Match(locale)
	if conf == language.No || idx < 0 || idx >= len(localeLayouts) {
		return CLayout
	}
	return localeLayouts[idx].layout
}

// ParseLocale accepts POSIX locale names (en_US.UTF-8, de_DE@euro, C) as
// well as BCP 47 tags. Anything unparseable is the C locale.
func ParseLocale(s string) language.Tag {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "", "C", "POSIX":
		return language.Und
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
