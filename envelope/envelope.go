// Package envelope strips Reddit's response wrapping (listings, kind/data
// pairs and the post+comments pair) down to the entity data beneath it.
//
// All functions are pure: they never mutate their input and report missing
// or oddly shaped structure as an absent result. The exception is the
// post+comments pair, whose two-element shape is part of the caller's
// contract; Post and Comments reject anything else with ErrMalformedResponse.
package envelope

import (
	"fmt"

	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/models"
	"github.com/pkg/errors"
)

var ErrMalformedResponse = errors.New("malformed response")

const (
	postIndex     = 0
	commentsIndex = 1
)

// Comments returns the data of each top-level comment. resp is either the
// post+comments pair or the comments listing on its own. Children that are
// not a sequence yield nil.
func Comments(resp any) ([]any, error) {
	listing := resp
	if _, ok := resp.([]any); ok {
		pair, err := postAndComments(resp)
		if err != nil {
			return nil, errors.Wrap(err, "unwrap comments")
		}
		listing = pair[commentsIndex]
	} else if _, ok := resp.(map[string]any); !ok {
		return nil, errors.Wrapf(ErrMalformedResponse, "unwrap comments: expected listing or post and comments pair, got %s", describe(resp))
	}

	children, ok := Children(listing)
	if !ok {
		return nil, nil
	}
	return childData(children), nil
}

// Post returns the data of the post in a post+comments pair, or nil when
// the post listing has no children.
func Post(resp any) (models.Raw, error) {
	pair, err := postAndComments(resp)
	if err != nil {
		return nil, errors.Wrap(err, "unwrap post")
	}

	children, ok := Children(pair[postIndex])
	if !ok || len(children) == 0 {
		return nil, nil
	}
	return Data(children[0]), nil
}

// Posts returns the data of each child of a listing, in order.
func Posts(listing any) []any {
	children, ok := Children(listing)
	if !ok {
		return nil
	}
	return childData(children)
}

// SubredditOrUser returns the data of a kind/data envelope when it is a mapping.
func SubredditOrUser(resp any) models.Raw {
	return Data(resp)
}

// SubredditsOrUsers unwraps every child of a listing with SubredditOrUser.
// A child without mapping data is nil in the result.
func SubredditsOrUsers(listing any) []any {
	children, ok := Children(listing)
	if !ok {
		return nil
	}

	out := make([]any, len(children))
	for i, child := range children {
		if d := SubredditOrUser(child); d != nil {
			out[i] = d
		}
	}
	return out
}

// WikiPage returns a copy of the page data. A revision_by that is itself a
// kind/data envelope is replaced by its data; any other value is kept.
func WikiPage(resp any) models.Raw {
	page := Data(resp)
	if page == nil {
		return nil
	}

	out := make(models.Raw, len(page))
	for k, v := range page {
		out[k] = v
	}
	if revisedBy, ok := page["revision_by"].(map[string]any); ok {
		if user := SubredditOrUser(revisedBy); user != nil {
			out["revision_by"] = user
		}
	}
	return out
}

// After returns the listing's pagination cursor. It reports false when the
// cursor is null or missing, which means there are no more pages.
func After(listing any) (string, bool) {
	return cursor(listing, "after")
}

// Before returns the cursor of the previous page.
func Before(listing any) (string, bool) {
	return cursor(listing, "before")
}

// Kind returns the envelope's kind discriminator, or KindUnknown.
func Kind(resp any) enums.Kind {
	m, ok := resp.(map[string]any)
	if !ok {
		return enums.KindUnknown
	}
	kind, _ := m["kind"].(string)
	return enums.Kind(kind)
}

// Children returns data.children of a listing when it is a sequence.
func Children(listing any) ([]any, bool) {
	d := Data(listing)
	if d == nil {
		return nil, false
	}
	children, ok := d["children"].([]any)
	return children, ok
}

// Data returns the data mapping of any envelope, listing or entity.
func Data(v any) models.Raw {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	d, ok := m["data"].(map[string]any)
	if !ok {
		return nil
	}
	return d
}

func postAndComments(resp any) ([]any, error) {
	pair, ok := resp.([]any)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedResponse, "expected post and comments pair, got %s", describe(resp))
	}
	if len(pair) != 2 {
		return nil, errors.Wrapf(ErrMalformedResponse, "expected post and comments pair, got %d elements", len(pair))
	}
	return pair, nil
}

func cursor(listing any, key string) (string, bool) {
	d := Data(listing)
	if d == nil {
		return "", false
	}
	s, ok := d[key].(string)
	return s, ok
}

func childData(children []any) []any {
	out := make([]any, len(children))
	for i, child := range children {
		if m, ok := child.(map[string]any); ok {
			out[i] = m["data"]
		}
	}
	return out
}

func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case []any:
		return fmt.Sprintf("sequence of %d", len(v))
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
