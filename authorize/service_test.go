package authorize_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-auth-client/authorize"
	"github.com/jrsteele09/go-auth-client/capture/capturefakes"
	"github.com/jrsteele09/go-auth-client/internal/utils"
	"github.com/jrsteele09/go-auth-client/oauthmodel"
)

const (
	testClientID     = "test-client-1"
	testClientSecret = "test-secret-1"
)

// testFixture holds all test dependencies
type testFixture struct {
	capturer *capturefakes.FakeCapturer
	service  *authorize.Service
}

func setupTestFixture(t *testing.T, options ...authorize.ServiceOption) *testFixture {
	t.Helper()

	capturer := &capturefakes.FakeCapturer{}
	options = append(options, authorize.WithStateGenerator(func() string { return generatedState }))

	service, err := authorize.NewService(capturer, options...)
	require.NoError(t, err)

	return &testFixture{capturer: capturer, service: service}
}

// echoStateRedirect builds a FinalURLFunc that echoes the auth URL's state
// back on a synthetic redirect, the way the provider does.
func echoStateRedirect(t *testing.T, format func(state string) string) func(string) string {
	t.Helper()
	return func(authURL string) string {
		u, err := url.Parse(authURL)
		require.NoError(t, err)
		return format(u.Query().Get("state"))
	}
}

func TestNewServiceRequiresCapturer(t *testing.T) {
	_, err := authorize.NewService(nil)
	require.Error(t, err)
}

func TestGetAuthorizationCodeRoundTrip(t *testing.T) {
	f := setupTestFixture(t)
	f.capturer.FinalURLFunc = echoStateRedirect(t, func(state string) string {
		return "urn:ietf:wg:oauth:2.0:oob?code=ABC123&session_state=sess-1&state=" + state
	})

	result, err := f.service.GetAuthorizationCode(context.Background(), oauthmodel.AuthorizationCodeRequest{
		ClientID: testClientID,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, utils.Ptr("ABC123"), result.AuthorizationCode)
	require.Equal(t, utils.Ptr(generatedState), result.State)

	// Defaults flowed into the authorization URL.
	require.Contains(t, f.capturer.CapturedAuthURL, "https://login.microsoftonline.com/common/oauth2/authorize?")
	require.Contains(t, f.capturer.CapturedAuthURL, "client_id="+testClientID)
	require.Contains(t, f.capturer.CapturedAuthURL, "redirect_uri=urn:ietf:wg:oauth:2.0:oob")
	require.Contains(t, f.capturer.CapturedAuthURL, "prompt=login")
}

func TestGetAuthorizationCodeStateMismatchYieldsNoResult(t *testing.T) {
	f := setupTestFixture(t)
	f.capturer.FinalURL = "urn:ietf:wg:oauth:2.0:oob?code=ABC123&state=FORGED"

	result, err := f.service.GetAuthorizationCode(context.Background(), oauthmodel.AuthorizationCodeRequest{
		ClientID: testClientID,
	})
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestGetAuthorizationCodeProviderError(t *testing.T) {
	f := setupTestFixture(t)
	f.capturer.FinalURL = "urn:ietf:wg:oauth:2.0:oob?error=access_denied&error_description=User+declined&state=FORGED"

	result, err := f.service.GetAuthorizationCode(context.Background(), oauthmodel.AuthorizationCodeRequest{
		ClientID: testClientID,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, utils.Ptr("access_denied"), result.Error)
}

func TestGetAuthorizationCodeRequiresClientID(t *testing.T) {
	f := setupTestFixture(t)
	_, err := f.service.GetAuthorizationCode(context.Background(), oauthmodel.AuthorizationCodeRequest{})
	require.ErrorIs(t, err, oauthmodel.ErrMissingClientID)
}

func TestGetAuthorizationCodeCaptureFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.capturer.Err = context.Canceled

	_, err := f.service.GetAuthorizationCode(context.Background(), oauthmodel.AuthorizationCodeRequest{
		ClientID: testClientID,
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGrantAdminConsent(t *testing.T) {
	f := setupTestFixture(t)
	f.capturer.FinalURLFunc = echoStateRedirect(t, func(state string) string {
		return "urn:ietf:wg:oauth:2.0:oob?admin_consent=True&tenant=contoso.onmicrosoft.com&state=" + state
	})

	result, err := f.service.GrantAdminConsent(context.Background(), oauthmodel.AdminConsentRequest{
		ClientID:   testClientID,
		TenantID:   "contoso.onmicrosoft.com",
		APIVersion: oauthmodel.APIVersionV2,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, utils.Ptr("True"), result.AdminConsent)
	require.Equal(t, utils.Ptr("contoso.onmicrosoft.com"), result.Tenant)

	require.Contains(t, f.capturer.CapturedAuthURL, "/contoso.onmicrosoft.com/adminconsent?")
	require.Contains(t, f.capturer.CapturedAuthURL, "prompt=login")
}

func TestGrantAdminConsentV1UsesAuthorizeEndpoint(t *testing.T) {
	f := setupTestFixture(t)
	f.capturer.FinalURLFunc = echoStateRedirect(t, func(state string) string {
		return "urn:ietf:wg:oauth:2.0:oob?admin_consent=True&state=" + state
	})

	_, err := f.service.GrantAdminConsent(context.Background(), oauthmodel.AdminConsentRequest{ClientID: testClientID})
	require.NoError(t, err)
	require.Contains(t, f.capturer.CapturedAuthURL, "/common/oauth2/authorize?")
	require.Contains(t, f.capturer.CapturedAuthURL, "prompt=admin_consent")
}

func TestGetTokenClientCredentials(t *testing.T) {
	var gotPath, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"access_token":"at","token_type":"Bearer"}`))
	}))
	defer ts.Close()

	f := setupTestFixture(t, authorize.WithBaseURL(ts.URL))

	bundle, err := f.service.GetToken(context.Background(), oauthmodel.TokenRequest{
		ClientID:     testClientID,
		ClientSecret: testClientSecret,
	})
	require.NoError(t, err)
	require.Equal(t, utils.Ptr("at"), bundle.AccessToken)
	require.Equal(t, utils.Ptr("Bearer"), bundle.TokenType)

	require.Equal(t, "/common/oauth2/token", gotPath)
	require.Contains(t, gotBody, "grant_type=client_credentials")
	require.NotContains(t, gotBody, "&code=")
}

func TestGetTokenAuthorizationCode(t *testing.T) {
	var gotPath, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"access_token":"at","refresh_token":"rt","id_token":"idt","token_type":"Bearer"}`))
	}))
	defer ts.Close()

	f := setupTestFixture(t, authorize.WithBaseURL(ts.URL))

	bundle, err := f.service.GetToken(context.Background(), oauthmodel.TokenRequest{
		ClientID:          testClientID,
		TenantID:          "tenant-1",
		AuthorizationCode: "ABC123",
		Scopes:            []string{"openid", "offline_access"},
		APIVersion:        oauthmodel.APIVersionV2,
	})
	require.NoError(t, err)
	require.Equal(t, utils.Ptr("rt"), bundle.RefreshToken)
	require.Equal(t, utils.Ptr("idt"), bundle.IDToken)

	require.Equal(t, "/tenant-1/oauth2/v2.0/token", gotPath)
	require.Contains(t, gotBody, "grant_type=authorization_code&code=ABC123")
	require.Contains(t, gotBody, "scope=openid+offline_access")
}

func TestGetTokenTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	f := setupTestFixture(t, authorize.WithBaseURL(ts.URL))

	bundle, err := f.service.GetToken(context.Background(), oauthmodel.TokenRequest{
		ClientID:     testClientID,
		ClientSecret: testClientSecret,
	})
	require.Nil(t, bundle)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid_client")
}
