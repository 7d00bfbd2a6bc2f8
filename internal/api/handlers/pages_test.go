package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/testutil"
)

func TestPageHandler_GetBySlug(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewPageBuilder().
		WithSlug("about").
		WithBlocks(t, []map[string]any{
			{"blockType": "content", "heading": "Our Story", "body": "Founded in 2001."},
		}).
		Build(t, ts.DB.DB)

	resp, err := http.Get(ts.APIURL("/pages/about"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var page struct {
		Slug   string           `json:"slug"`
		Blocks []map[string]any `json:"blocks"`
	}
	testutil.AssertJSONResponse(t, resp, &page)
	assert.Equal(t, "about", page.Slug)
	require.Len(t, page.Blocks, 1)
	assert.Equal(t, "content", page.Blocks[0]["blockType"])
}

func TestPageHandler_GetBySlug_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/pages/no-such-page"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Page not found")
}

func TestPageHandler_List_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/pages"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}

func TestPageHandler_CreateAndList(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewStaffBuilder().BuildAndAuthenticate(t, ts)

	body := map[string]any{
		"slug":      "contact",
		"title":     "Contact Us",
		"heroType":  "lowImpact",
		"published": false,
		"blocks": []map[string]any{
			{"blockType": "content", "body": "Reach us at the front desk."},
		},
	}
	resp := authedRequest(t, http.MethodPost, ts.APIURL("/pages"), token, body)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	listResp := authedRequest(t, http.MethodGet, ts.APIURL("/pages"), token, nil)
	defer listResp.Body.Close()
	testutil.AssertStatusCode(t, listResp, http.StatusOK)

	var listing docsListing
	testutil.AssertJSONResponse(t, listResp, &listing)
	testutil.AssertDocSlugs(t, listing.Docs, "contact")
}

func TestPageHandler_GetBySlug_DraftHidden(t *testing.T) {
	ts := testutil.NewTestServer(t)

	page := testutil.NewPageBuilder().
		WithSlug("draft-page").
		WithPublished(false).
		Build(t, ts.DB.DB)

	// Anonymous read must not reveal the draft exists.
	resp, err := http.Get(ts.APIURL("/pages/draft-page"))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Page not found")

	// Staff still see it through the authenticated list.
	_, token := testutil.NewStaffBuilder().BuildAndAuthenticate(t, ts)
	listResp := authedRequest(t, http.MethodGet, ts.APIURL("/pages"), token, nil)
	defer listResp.Body.Close()
	testutil.AssertStatusCode(t, listResp, http.StatusOK)

	var listing docsListing
	testutil.AssertJSONResponse(t, listResp, &listing)
	testutil.AssertDocSlugs(t, listing.Docs, page.Slug)
}

func TestPageHandler_Create_InvalidBlocks(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewStaffBuilder().BuildAndAuthenticate(t, ts)

	body := map[string]any{
		"slug":   "broken",
		"title":  "Broken Page",
		"blocks": map[string]any{"not": "a list"},
	}
	resp := authedRequest(t, http.MethodPost, ts.APIURL("/pages"), token, body)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestSiteHandler_RenderedPage(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewPageBuilder().
		WithSlug("home").
		WithHero(domain.HeroHighImpact, "Play With Us").
		WithBlocks(t, []map[string]any{
			{"blockType": "content", "heading": "Welcome", "body": "Join a team near you."},
			{"blockType": "mysteryWidget"},
			{"blockType": "faq", "items": []map[string]any{
				{"question": "When does the season start?", "answer": "June."},
			}},
		}).
		Build(t, ts.DB.DB)

	resp, err := http.Get(ts.SiteURL("/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	testutil.AssertHTMLContains(t, resp,
		"Play With Us",
		"<h2>Welcome</h2>",
		"When does the season start?",
	)
}

func TestSiteHandler_UnpublishedPageHidden(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewPageBuilder().
		WithSlug("draft-page").
		WithPublished(false).
		Build(t, ts.DB.DB)

	resp, err := http.Get(ts.SiteURL("/draft-page"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	testutil.AssertHTMLContains(t, resp, "Page not found")
}

func TestSiteHandler_UnknownSlugRendersNotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.SiteURL("/nowhere"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	testutil.AssertHTMLContains(t, resp, "Page not found")
}

func TestSiteHandler_ProgramDetail(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewProgramBuilder().
		WithSlug("summer-camp").
		WithTitle("Summer Soccer Camp").
		WithDates("2025-06-09", "2025-07-18").
		Build(t, ts.DB.DB)

	resp, err := http.Get(ts.SiteURL("/programs/summer-camp"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertHTMLContains(t, resp,
		"Summer Soccer Camp",
		"Ages 8–12",
		"6 weeks",
	)
}

func TestSiteHandler_ProgramDetail_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.SiteURL("/programs/no-such-program"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}
