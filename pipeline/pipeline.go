// Package pipeline runs the unwrap, format and objectify stages for a named
// entity kind.
package pipeline

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/envelope"
	"github.com/kova98/karmakaze/formatters"
	"github.com/kova98/karmakaze/metrics"
	"github.com/kova98/karmakaze/objects"
	"github.com/kova98/karmakaze/sources"
	"github.com/kova98/karmakaze/timefmt"
	"github.com/pkg/errors"
)

// ErrUnsupported is returned for payloads that are neither decoded JSON nor
// raw JSON bytes.
var ErrUnsupported = errors.New("unsupported payload")

type Pipeline struct {
	logger    *slog.Logger
	formatter *formatters.Formatter
	objectify *objects.Objectifier
	metrics   *metrics.Metrics
}

func New(logger *slog.Logger, times *timefmt.Formatter, m *metrics.Metrics) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:    logger,
		formatter: formatters.New(logger, times, m),
		objectify: objects.New(logger, times, m),
		metrics:   m,
	}
}

// Normalize unwraps payload and formats it as entity. An absent result is
// nil with no error.
func (p *Pipeline) Normalize(entity enums.Entity, payload any) (any, error) {
	payload, err := decoded(payload)
	if err != nil {
		return nil, err
	}

	f := p.formatter
	switch entity {
	case enums.EntityComments:
		items, err := envelope.Comments(payload)
		if err != nil {
			return nil, p.unwrapFailed(entity, err)
		}
		return records(f.Comments(items)), nil
	case enums.EntityPost:
		data, err := envelope.Post(payload)
		if err != nil {
			return nil, p.unwrapFailed(entity, err)
		}
		if data == nil {
			return nil, nil
		}
		return f.Post(data), nil
	case enums.EntityPosts:
		return records(f.Posts(envelope.Posts(payload))), nil
	case enums.EntitySubreddit:
		if data := envelope.SubredditOrUser(payload); data != nil {
			return f.Subreddit(data), nil
		}
		return nil, nil
	case enums.EntitySubreddits:
		return records(f.Subreddits(envelope.SubredditsOrUsers(payload))), nil
	case enums.EntityUser:
		if data := envelope.SubredditOrUser(payload); data != nil {
			return f.User(data), nil
		}
		return nil, nil
	case enums.EntityUsers:
		return records(f.Users(envelope.SubredditsOrUsers(payload))), nil
	case enums.EntityWikiPage:
		if data := envelope.WikiPage(payload); data != nil {
			return f.WikiPage(data), nil
		}
		return nil, nil
	}
	return nil, errors.Wrapf(enums.ErrUnknownEntity, "normalize %q", entity)
}

// Objectify converts payload into Object trees for entity. An absent result
// is nil with no error.
func (p *Pipeline) Objectify(entity enums.Entity, payload any) (any, error) {
	payload, err := decoded(payload)
	if err != nil {
		return nil, err
	}

	o := p.objectify
	switch entity {
	case enums.EntityComments:
		return objectList(o.Comments(payload)), nil
	case enums.EntityPost:
		return object(o.Post(payload)), nil
	case enums.EntityPosts:
		return objectList(o.Posts(payload)), nil
	case enums.EntitySubreddit:
		return object(o.Subreddit(payload)), nil
	case enums.EntitySubreddits:
		return objectList(o.Subreddits(payload)), nil
	case enums.EntityUser:
		return object(o.User(payload)), nil
	case enums.EntityUsers:
		return objectList(o.Users(payload)), nil
	case enums.EntityWikiPage:
		return object(o.WikiPage(payload)), nil
	}
	return nil, errors.Wrapf(enums.ErrUnknownEntity, "objectify %q", entity)
}

func (p *Pipeline) unwrapFailed(entity enums.Entity, err error) error {
	p.logger.Debug("rejecting response", "kind", entity, "reason", err)
	p.metrics.ShapeRejected(string(entity), metrics.StageUnwrap)
	return err
}

// decoded accepts the values encoding/json produces, plus raw JSON as bytes
// or a reader.
func decoded(payload any) (any, error) {
	switch v := payload.(type) {
	case nil, map[string]any, []any, string, float64, bool, json.Number:
		return v, nil
	case json.RawMessage:
		return sources.Read(bytes.NewReader(v))
	case []byte:
		return sources.Read(bytes.NewReader(v))
	case io.Reader:
		return sources.Read(v)
	}
	return nil, errors.Wrapf(ErrUnsupported, "%T", payload)
}

// The helpers below keep typed nils out of the returned interface.

func records[T any](list []T) any {
	if list == nil {
		return nil
	}
	return list
}

func objectList(list []*objects.Object) any {
	return records(list)
}

func object(obj *objects.Object) any {
	if obj == nil {
		return nil
	}
	return obj
}
