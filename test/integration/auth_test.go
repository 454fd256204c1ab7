package integration

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	form := url.Values{}
	form.Add("credential", "valid_token")

	// Do not follow the post-login redirect; the cookies are on the 303.
	app.Client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := app.Client.PostForm(app.Server.URL+"/oauth/callback", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	location, err := resp.Location()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/redirect", location.String())

	var accessToken, refreshToken string
	for _, cookie := range resp.Cookies() {
		switch cookie.Name {
		case "access_token":
			accessToken = cookie.Value
		case "refresh_token":
			refreshToken = cookie.Value
		}
	}
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	// The minted access token works against the authenticated API.
	req, err := http.NewRequest("GET", app.Server.URL+"/api/users/me", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: accessToken})

	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Refresh produces a new access token. Tokens embed an issued-at second,
	// so wait long enough for the timestamp to move.
	time.Sleep(1200 * time.Millisecond)

	req, err = http.NewRequest("POST", app.Server.URL+"/oauth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var newAccessToken string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "access_token" {
			newAccessToken = cookie.Value
		}
	}
	assert.NotEmpty(t, newAccessToken)
	assert.NotEqual(t, accessToken, newAccessToken)

	// Logout revokes the refresh token; a further refresh fails.
	req, err = http.NewRequest("POST", app.Server.URL+"/oauth/logout", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err = http.NewRequest("POST", app.Server.URL+"/oauth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthFlowInvalidCredential(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	form := url.Values{}
	form.Add("credential", "bad_token")

	resp, err := app.Client.PostForm(app.Server.URL+"/oauth/callback", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTamperedTokenRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := app.createUserAndToken(t)

	req, err := http.NewRequest("GET", app.Server.URL+"/api/polls", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token+"tampered")

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
