package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evan/sports-club-website/internal/testutil"
)

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful registration with setup token",
			request: map[string]string{
				"email":      "admin@example.com",
				"name":       "Site Admin",
				"password":   "password123",
				"setupToken": "test-setup-token",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.AuthResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "admin@example.com", result.User.Email)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			},
		},
		{
			name: "wrong setup token rejected",
			request: map[string]string{
				"email":      "intruder@example.com",
				"password":   "password123",
				"setupToken": "guessed-token",
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "missing setup token rejected",
			request: map[string]string{
				"email":    "intruder@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "missing email",
			request: map[string]string{
				"password":   "password123",
				"setupToken": "test-setup-token",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"email":      "taken@example.com",
				"password":   "password123",
				"setupToken": "test-setup-token",
			},
			setup: func() {
				testutil.NewStaffBuilder().
					WithEmail("taken@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.APIURL("/auth/register"), tt.request)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, password := testutil.NewStaffBuilder().
		WithEmail("coach@example.com").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
	}{
		{
			name: "valid credentials",
			request: map[string]string{
				"email":    "coach@example.com",
				"password": password,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"email":    "coach@example.com",
				"password": "wrong-password",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			request: map[string]string{
				"email":    "nobody@example.com",
				"password": password,
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			request: map[string]string{
				"email": "coach@example.com",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/auth/login"), tt.request)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewStaffBuilder().BuildAndAuthenticate(t, ts)

	req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/auth/me"), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	testutil.RequireNoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, user.ID.String(), result.ID)
	assert.Equal(t, user.Email, result.Email)
}

func TestAuthHandler_Me_Unauthorized(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/auth/me"))
	testutil.RequireNoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}
