package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan/sports-club-website/internal/testutil"
)

func TestGlobalHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/globals/header"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var global struct {
		Key  string `json:"key"`
		Data struct {
			NavItems []map[string]string `json:"navItems"`
		} `json:"data"`
	}
	testutil.AssertJSONResponse(t, resp, &global)
	assert.Equal(t, "header", global.Key)
	assert.NotEmpty(t, global.Data.NavItems, "header should be seeded on startup")
}

func TestGlobalHandler_Get_UnknownKey(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/globals/sidebar"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Global not found")
}

func TestGlobalHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewStaffBuilder().BuildAndAuthenticate(t, ts)

	body := map[string]any{
		"data": map[string]any{
			"navItems": []map[string]string{
				{"label": "Tournaments", "url": "/tournaments"},
			},
		},
	}
	resp := authedRequest(t, http.MethodPut, ts.APIURL("/globals/header"), token, body)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	getResp, err := http.Get(ts.APIURL("/globals/header"))
	require.NoError(t, err)
	defer getResp.Body.Close()

	var global struct {
		Data struct {
			NavItems []map[string]string `json:"navItems"`
		} `json:"data"`
	}
	testutil.AssertJSONResponse(t, getResp, &global)
	require.Len(t, global.Data.NavItems, 1)
	assert.Equal(t, "Tournaments", global.Data.NavItems[0]["label"])
}

func TestGlobalHandler_Update_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, ts.APIURL("/globals/header"), nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}
