package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan/sports-club-website/internal/testutil"
)

func TestPreviewHandler_RequiresToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name string
		url  string
	}{
		{name: "missing token", url: ts.PreviewURL("")},
		{name: "invalid token", url: ts.PreviewURL("not-a-jwt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(tt.url, nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestPreviewHandler_BroadcastsContentChanges(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewStaffBuilder().BuildAndAuthenticate(t, ts)

	client := testutil.NewPreviewClient(t, ts.PreviewURL(token))

	resp := authedRequest(t, http.MethodPost, ts.APIURL("/programs"), token, map[string]any{
		"slug":        "announced-camp",
		"title":       "Announced Camp",
		"location":    "chicago",
		"gender":      "coed",
		"programType": "camp",
	})
	resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	event := client.WaitForEvent(5 * time.Second)
	assert.Equal(t, "contentChanged", event.Type)
	assert.Equal(t, "programs", event.Collection)
	assert.NotEmpty(t, event.ID)
	assert.NotZero(t, event.Timestamp)
}
