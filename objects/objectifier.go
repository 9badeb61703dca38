// Package objects turns decoded Reddit JSON into read-only Object trees.
// Timestamp attributes are rendered with a timefmt.Formatter on the way in.
package objects

import (
	"log/slog"

	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/envelope"
	"github.com/kova98/karmakaze/metrics"
	"github.com/kova98/karmakaze/timefmt"
	"golang.org/x/text/language"
)

const listingKind enums.Entity = "listing"

var timeKeys = map[string]bool{
	"created":       true,
	"created_utc":   true,
	"edited":        true,
	"revision_date": true,
}

type Objectifier struct {
	logger  *slog.Logger
	times   *timefmt.Formatter
	metrics *metrics.Metrics
}

func New(logger *slog.Logger, times *timefmt.Formatter, m *metrics.Metrics) *Objectifier {
	if logger == nil {
		logger = slog.Default()
	}
	if times == nil {
		times = timefmt.New(enums.TimeFormatLocale, nil, language.Und)
	}
	return &Objectifier{
		logger:  logger,
		times:   times,
		metrics: m,
	}
}

// Convert maps mappings to *Object and sequences to []any of converted
// elements. Scalars are returned unchanged.
func (o *Objectifier) Convert(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return o.object(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = o.Convert(item)
		}
		return out
	}
	return v
}

func (o *Objectifier) object(m map[string]any) *Object {
	fields := make(map[string]any, len(m))
	for k, v := range m {
		if timeKeys[k] {
			fields[k] = o.timestamp(v)
			continue
		}
		fields[k] = o.Convert(v)
	}
	return &Object{fields: fields}
}

// timestamp keeps strings as they are so already rendered trees can be
// converted again.
func (o *Objectifier) timestamp(v any) any {
	if s, ok := v.(string); ok {
		return s
	}
	return o.times.Value(v)
}

func (o *Objectifier) Comments(resp any) []*Object {
	items, err := envelope.Comments(resp)
	if err != nil {
		o.reject(enums.EntityComments, err.Error())
		return nil
	}
	return o.all(enums.EntityComments, items)
}

func (o *Objectifier) Post(resp any) *Object {
	data, err := envelope.Post(resp)
	if err != nil {
		o.reject(enums.EntityPost, err.Error())
		return nil
	}
	return o.one(enums.EntityPost, data)
}

func (o *Objectifier) Posts(listing any) []*Object {
	return o.all(enums.EntityPosts, envelope.Posts(listing))
}

// Listing converts the listing's data mapping, keeping children and cursors.
func (o *Objectifier) Listing(resp any) *Object {
	return o.one(listingKind, envelope.Data(resp))
}

func (o *Objectifier) Subreddit(resp any) *Object {
	return o.one(enums.EntitySubreddit, envelope.SubredditOrUser(resp))
}

func (o *Objectifier) User(resp any) *Object {
	return o.one(enums.EntityUser, envelope.SubredditOrUser(resp))
}

func (o *Objectifier) Subreddits(listing any) []*Object {
	return o.all(enums.EntitySubreddits, envelope.SubredditsOrUsers(listing))
}

func (o *Objectifier) Users(listing any) []*Object {
	return o.all(enums.EntityUsers, envelope.SubredditsOrUsers(listing))
}

func (o *Objectifier) WikiPage(resp any) *Object {
	return o.one(enums.EntityWikiPage, envelope.WikiPage(resp))
}

func (o *Objectifier) one(entity enums.Entity, data map[string]any) *Object {
	if data == nil {
		return nil
	}
	o.metrics.ObjectsBuilt(string(entity), 1)
	return o.object(data)
}

// all converts every element or nothing: a list with a non-mapping element
// is absent.
func (o *Objectifier) all(entity enums.Entity, items []any) []*Object {
	if items == nil {
		return nil
	}

	out := make([]*Object, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			o.logger.Debug("rejecting list with non-mapping element", "kind", entity, "index", i)
			o.metrics.ShapeRejected(string(entity), metrics.StageObjectify)
			return nil
		}
		out[i] = o.object(m)
	}
	o.metrics.ObjectsBuilt(string(entity), len(out))
	return out
}

func (o *Objectifier) reject(entity enums.Entity, reason string) {
	o.logger.Debug("rejecting response", "kind", entity, "reason", reason)
	o.metrics.ShapeRejected(string(entity), metrics.StageObjectify)
}
