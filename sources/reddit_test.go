package sources

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/internal/fixtures"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_PostAndComments(t *testing.T) {
	payload, err := Read(strings.NewReader(string(fixtures.Bytes(t, fixtures.PostAndComments))))

	require.NoError(t, err)
	pair, ok := payload.([]any)
	require.True(t, ok)
	assert.Len(t, pair, 2)
}

func TestRead_NumbersAreFloats(t *testing.T) {
	payload, err := Read(strings.NewReader(`{"created": 1700000000}`))

	require.NoError(t, err)
	assert.Equal(t, float64(1700000000), payload.(map[string]any)["created"])
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader("  "))

	assert.True(t, errors.Is(err, ErrEmptyPayload))
}

func TestRead_Trailing(t *testing.T) {
	_, err := Read(strings.NewReader(`{"a": 1} {"b": 2}`))

	assert.True(t, errors.Is(err, ErrTrailingPayload))
}

func TestRead_Invalid(t *testing.T) {
	_, err := Read(strings.NewReader(`{"a": `))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode payload")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, fixtures.Bytes(t, fixtures.User), 0o600))

	payload, err := ReadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "t2", payload.(map[string]any)["kind"])
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadListing(t *testing.T) {
	listing, err := ReadListing(strings.NewReader(string(fixtures.Bytes(t, fixtures.Posts))))

	require.NoError(t, err)
	assert.Equal(t, enums.KindListing, listing.Kind)
	assert.Len(t, listing.Data.Children, 3)
	assert.Equal(t, enums.KindLink, listing.Data.Children[0].Kind)
	assert.Equal(t, "t3_1g2h3l", listing.Cursor())
}

func TestTruncateError(t *testing.T) {
	long := errors.New(strings.Repeat("x", 400))

	got := truncateError(long)

	assert.Len(t, got.Error(), maxErrorLen+3)
	assert.True(t, strings.HasSuffix(got.Error(), "..."))

	short := errors.New("short")
	assert.Equal(t, short, truncateError(short))
}
