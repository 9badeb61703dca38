package models

import (
	"encoding/json"
	"testing"

	"github.com/kova98/karmakaze/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_Decode(t *testing.T) {
	payload := `{
		"kind": "Listing",
		"data": {
			"after": "t3_1abc",
			"before": null,
			"dist": 2,
			"children": [
				{"kind": "t3", "data": {"id": "1abc"}},
				{"kind": "t3", "data": {"id": "1abd"}}
			]
		}
	}`

	var listing Listing
	require.NoError(t, json.Unmarshal([]byte(payload), &listing))

	assert.Equal(t, enums.KindListing, listing.Kind)
	assert.Equal(t, "t3_1abc", listing.Cursor())
	assert.Nil(t, listing.Data.Before)
	require.NotNil(t, listing.Data.Dist)
	assert.Equal(t, 2, *listing.Data.Dist)
	require.Len(t, listing.Data.Children, 2)
	assert.Equal(t, enums.KindLink, listing.Data.Children[0].Kind)
	assert.JSONEq(t, `{"id": "1abd"}`, string(listing.Data.Children[1].Data))
}

func TestListing_CursorLastPage(t *testing.T) {
	var listing Listing
	require.NoError(t, json.Unmarshal([]byte(`{"kind": "Listing", "data": {"after": null, "children": []}}`), &listing))

	assert.Equal(t, "", listing.Cursor())
	assert.Empty(t, listing.Data.Children)
}
