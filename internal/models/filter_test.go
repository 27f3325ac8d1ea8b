package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterState(t *testing.T) {
	tests := []struct {
		in      string
		want    FilterState
		wantErr bool
	}{
		{"all", ShowAll, false},
		{"", ShowAll, false},
		{"Favorites", ShowFavoritesOnly, false},
		{" favorites_only ", ShowFavoritesOnly, false},
		{"starred", ShowAll, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFilterState(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFilterStateJSON(t *testing.T) {
	var body struct {
		Filter FilterState `json:"filter"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"filter":"favorites"}`), &body))
	assert.Equal(t, ShowFavoritesOnly, body.Filter)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"filter":"favorites"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"filter":"nope"}`), &body))
}
