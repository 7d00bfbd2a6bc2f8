package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evan/sports-club-website/internal/testutil"
)

func TestCoachHandler_List_LimitClamped(t *testing.T) {
	ts := testutil.NewTestServer(t)

	total := ts.Config.DefaultListLimit + 2
	for i := 0; i < total; i++ {
		testutil.NewCoachBuilder().
			WithName(fmt.Sprintf("Coach %02d", i)).
			WithOrder(i).
			Build(t, ts.DB.DB)
	}

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{
			name:     "no limit falls back to the default page size",
			query:    "",
			expected: ts.Config.DefaultListLimit,
		},
		{
			name:     "explicit limit within bounds is honored",
			query:    fmt.Sprintf("?limit=%d", total),
			expected: total,
		},
		{
			name:     "negative limit falls back to the default page size",
			query:    "?limit=-1",
			expected: ts.Config.DefaultListLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL("/coaches") + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, http.StatusOK)

			var listing docsListing
			testutil.AssertJSONResponse(t, resp, &listing)
			require.Len(t, listing.Docs, tt.expected)
		})
	}
}
