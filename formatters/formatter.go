// Package formatters renames unwrapped Reddit entity data into records with
// a stable public vocabulary. Each entity kind has a fixed field table and
// every record carries every field of its table, nil when the source lacks it.
package formatters

import (
	"log/slog"
	"strings"

	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/metrics"
	"github.com/kova98/karmakaze/models"
	"github.com/kova98/karmakaze/timefmt"
	"golang.org/x/text/language"
)

type Formatter struct {
	logger  *slog.Logger
	times   *timefmt.Formatter
	metrics *metrics.Metrics
}

// New builds a Formatter. A nil logger means slog.Default(), nil times
// means locale formatting in the local zone; m may be nil.
func New(logger *slog.Logger, times *timefmt.Formatter, m *metrics.Metrics) *Formatter {
	if logger == nil {
		logger = slog.Default()
	}
	if times == nil {
		times = timefmt.New(enums.TimeFormatLocale, nil, language.Und)
	}
	return &Formatter{
		logger:  logger,
		times:   times,
		metrics: m,
	}
}

func (f *Formatter) Comment(data models.Raw) models.Record {
	return f.format(enums.EntityComments, data)
}

func (f *Formatter) Comments(items []any) []models.Record {
	return f.formatAll(enums.EntityComments, enums.EntityComments, items)
}

func (f *Formatter) Post(data models.Raw) models.Record {
	return f.format(enums.EntityPost, data)
}

func (f *Formatter) Posts(items []any) []models.Record {
	return f.formatAll(enums.EntityPosts, enums.EntityPost, items)
}

func (f *Formatter) Subreddit(data models.Raw) models.Record {
	return f.format(enums.EntitySubreddit, data)
}

func (f *Formatter) Subreddits(items []any) []models.Record {
	return f.formatAll(enums.EntitySubreddits, enums.EntitySubreddit, items)
}

func (f *Formatter) User(data models.Raw) models.Record {
	return f.format(enums.EntityUser, data)
}

func (f *Formatter) Users(items []any) []models.Record {
	return f.formatAll(enums.EntityUsers, enums.EntityUser, items)
}

// WikiPage formats a page, nesting the formatted reviser under revised_by
// when revision_by is a mapping.
func (f *Formatter) WikiPage(data models.Raw) models.Record {
	return f.format(enums.EntityWikiPage, data)
}

func (f *Formatter) format(entity enums.Entity, data models.Raw) models.Record {
	fields := table(entity)
	record := make(models.Record, len(fields))
	for _, fd := range fields {
		record[fd.name] = f.value(fd, data[fd.source])
	}
	f.metrics.RecordFormatted(string(entity))
	return record
}

// formatAll requires every element to be a mapping; otherwise nothing is
// formatted and the result is nil.
func (f *Formatter) formatAll(list, element enums.Entity, items []any) []models.Record {
	if items == nil {
		return nil
	}

	raws := make([]models.Raw, len(items))
	for i, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			f.logger.Debug("rejecting list with non-mapping element", "kind", list, "index", i)
			f.metrics.ShapeRejected(string(list), metrics.StageFormat)
			return nil
		}
		raws[i] = raw
	}

	records := make([]models.Record, len(raws))
	for i, raw := range raws {
		records[i] = f.format(element, raw)
	}
	return records
}

func (f *Formatter) value(fd field, v any) any {
	switch fd.kind {
	case timestamp:
		return f.times.Value(v)
	case iconURL:
		s, _ := v.(string)
		url, _, _ := strings.Cut(s, "?")
		return url
	case nestedUser:
		if raw, ok := v.(map[string]any); ok {
			return f.User(raw)
		}
		return v
	}
	return v
}
