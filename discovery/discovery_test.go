package discovery_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-auth-client/discovery"
)

func metadataServer(t *testing.T, tenantID string, issuerOverride string) *httptest.Server {
	t.Helper()

	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+tenantID+"/v2.0/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		issuer := ts.URL + "/" + tenantID + "/v2.0"
		if issuerOverride != "" {
			issuer = issuerOverride
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                 issuer,
			"authorization_endpoint": ts.URL + "/" + tenantID + "/oauth2/v2.0/authorize",
			"token_endpoint":         ts.URL + "/" + tenantID + "/oauth2/v2.0/token",
			"jwks_uri":               ts.URL + "/" + tenantID + "/discovery/v2.0/keys",
			"id_token_signing_alg_values_supported": []string{"RS256"},
			"subject_types_supported":               []string{"pairwise"},
			"response_types_supported":              []string{"code", "id_token"},
		})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestResolveTenantEndpoints(t *testing.T) {
	ts := metadataServer(t, "tenant-1", "")

	md, err := discovery.Resolve(context.Background(), ts.URL, "tenant-1")
	require.NoError(t, err)
	require.Equal(t, ts.URL+"/tenant-1/v2.0", md.Issuer)
	require.Equal(t, ts.URL+"/tenant-1/oauth2/v2.0/authorize", md.Endpoint.AuthURL)
	require.Equal(t, ts.URL+"/tenant-1/oauth2/v2.0/token", md.Endpoint.TokenURL)
}

func TestResolvePseudoTenantRelaxesIssuerCheck(t *testing.T) {
	// The common tenant announces a templated issuer that differs from the
	// request URL.
	ts := metadataServer(t, "common", "https://login.microsoftonline.com/{tenantid}/v2.0")

	md, err := discovery.Resolve(context.Background(), ts.URL, "common")
	require.NoError(t, err)
	require.Equal(t, "https://login.microsoftonline.com/{tenantid}/v2.0", md.Issuer)
	require.Equal(t, ts.URL+"/common/oauth2/v2.0/token", md.Endpoint.TokenURL)
}

func TestResolveDirectoryTenantIssuerMismatchFails(t *testing.T) {
	ts := metadataServer(t, "tenant-1", "https://evil.example.test/tenant-1/v2.0")

	_, err := discovery.Resolve(context.Background(), ts.URL, "tenant-1")
	require.Error(t, err)
}

func TestResolveUnknownTenant(t *testing.T) {
	ts := metadataServer(t, "tenant-1", "")

	_, err := discovery.Resolve(context.Background(), ts.URL, "does-not-exist")
	require.Error(t, err)
}
