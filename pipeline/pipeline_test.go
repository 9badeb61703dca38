package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/envelope"
	"github.com/kova98/karmakaze/formatters"
	"github.com/kova98/karmakaze/internal/fixtures"
	"github.com/kova98/karmakaze/metrics"
	"github.com/kova98/karmakaze/models"
	"github.com/kova98/karmakaze/objects"
	"github.com/kova98/karmakaze/timefmt"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newPipeline(m *metrics.Metrics) *Pipeline {
	times := timefmt.New(enums.TimeFormatLocale, time.UTC, language.Und)
	return New(nil, times, m)
}

func TestNormalize_EveryEntity(t *testing.T) {
	tests := []struct {
		entity  enums.Entity
		fixture string
		count   int
	}{
		{enums.EntityComments, fixtures.PostAndComments, 2},
		{enums.EntityPost, fixtures.PostAndComments, 1},
		{enums.EntityPosts, fixtures.Posts, 3},
		{enums.EntitySubreddit, fixtures.Subreddit, 1},
		{enums.EntitySubreddits, fixtures.Subreddits, 2},
		{enums.EntityUser, fixtures.User, 1},
		{enums.EntityUsers, fixtures.Users, 2},
		{enums.EntityWikiPage, fixtures.WikiPage, 1},
	}

	p := newPipeline(nil)
	for _, tt := range tests {
		t.Run(string(tt.entity), func(t *testing.T) {
			out, err := p.Normalize(tt.entity, fixtures.Load(t, tt.fixture))
			require.NoError(t, err)

			if tt.entity.IsList() {
				list, ok := out.([]models.Record)
				require.True(t, ok, "got %T", out)
				assert.Len(t, list, tt.count)
				return
			}
			record, ok := out.(models.Record)
			require.True(t, ok, "got %T", out)
			assert.Len(t, record, len(formatters.Fields(tt.entity)))
		})
	}
}

func TestNormalize_Post(t *testing.T) {
	out, err := newPipeline(nil).Normalize(enums.EntityPost, fixtures.Load(t, fixtures.PostAndComments))

	require.NoError(t, err)
	post := out.(models.Record)
	assert.Equal(t, "Release notes inside.", post["body"])
	assert.Equal(t, float64(2), post["comments"])
	assert.Equal(t, "11/14/23, 22:13:20", post["created"])
}

func TestNormalize_AbsentIsUntypedNil(t *testing.T) {
	p := newPipeline(nil)

	for _, entity := range enums.Entities {
		if entity == enums.EntityComments || entity == enums.EntityPost {
			continue
		}
		out, err := p.Normalize(entity, map[string]any{"kind": "t2"})
		require.NoError(t, err, entity)
		assert.True(t, out == nil, "%s: got %T", entity, out)
	}
}

func TestNormalize_MalformedPair(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := newPipeline(metrics.New(reg))

	_, err := p.Normalize(enums.EntityPost, []any{"one"})

	assert.True(t, errors.Is(err, envelope.ErrMalformedResponse))
	count, err := testutil.GatherAndCount(reg, "karmakaze_shape_rejections_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNormalize_UnknownEntity(t *testing.T) {
	_, err := newPipeline(nil).Normalize(enums.Entity("karma"), map[string]any{})

	assert.True(t, errors.Is(err, enums.ErrUnknownEntity))
}

func TestNormalize_RawBytes(t *testing.T) {
	p := newPipeline(nil)

	out, err := p.Normalize(enums.EntityUser, fixtures.Bytes(t, fixtures.User))
	require.NoError(t, err)
	assert.Equal(t, "gopher_dev", out.(models.Record)["name"])

	out, err = p.Normalize(enums.EntityUser, strings.NewReader(string(fixtures.Bytes(t, fixtures.User))))
	require.NoError(t, err)
	assert.Equal(t, "gopher_dev", out.(models.Record)["name"])
}

func TestNormalize_Unsupported(t *testing.T) {
	_, err := newPipeline(nil).Normalize(enums.EntityUser, struct{}{})

	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestObjectify_EveryEntity(t *testing.T) {
	tests := []struct {
		entity  enums.Entity
		fixture string
	}{
		{enums.EntityComments, fixtures.PostAndComments},
		{enums.EntityPost, fixtures.PostAndComments},
		{enums.EntityPosts, fixtures.Posts},
		{enums.EntitySubreddit, fixtures.Subreddit},
		{enums.EntitySubreddits, fixtures.Subreddits},
		{enums.EntityUser, fixtures.User},
		{enums.EntityUsers, fixtures.Users},
		{enums.EntityWikiPage, fixtures.WikiPage},
	}

	p := newPipeline(nil)
	for _, tt := range tests {
		t.Run(string(tt.entity), func(t *testing.T) {
			out, err := p.Objectify(tt.entity, fixtures.Load(t, tt.fixture))
			require.NoError(t, err)

			if tt.entity.IsList() {
				list, ok := out.([]*objects.Object)
				require.True(t, ok, "got %T", out)
				assert.NotEmpty(t, list)
				return
			}
			_, ok := out.(*objects.Object)
			assert.True(t, ok, "got %T", out)
		})
	}
}

func TestObjectify_AbsentAndUnknown(t *testing.T) {
	p := newPipeline(nil)

	out, err := p.Objectify(enums.EntityPosts, "nope")
	require.NoError(t, err)
	assert.True(t, out == nil)

	_, err = p.Objectify(enums.EntityInvalid, nil)
	assert.True(t, errors.Is(err, enums.ErrUnknownEntity))
}
