// Package endpoints builds the authorization, admin-consent and token
// endpoint URLs and request bodies for both generations of the identity
// platform. All builders are pure string construction; nothing here performs
// I/O.
package endpoints

import (
	"net/url"
	"strings"

	"github.com/jrsteele09/go-auth-client/oauthmodel"
)

// DefaultBaseURL is the production authentication host.
const DefaultBaseURL = "https://login.microsoftonline.com"

// Builder constructs endpoint URLs against a base authentication host.
// The zero value uses DefaultBaseURL.
type Builder struct {
	BaseURL string
}

// New returns a Builder against the production host.
func New() *Builder {
	return &Builder{BaseURL: DefaultBaseURL}
}

func (b *Builder) baseURL() string {
	if b.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimSuffix(b.BaseURL, "/")
}

// AuthorizationURL builds the authorization endpoint URL for an interactive
// code request. The parameter order is fixed to match the provider's
// documented examples:
//
//	V1: {base}/{tenant}/oauth2/authorize?response_type=code&client_id=...&redirect_uri=...&state=...&prompt=...
//	V2: {base}/{tenant}/oauth2/v2.0/authorize?...&prompt=...&response_mode=query
//
// A scope parameter is appended only when scopes were supplied.
func (b *Builder) AuthorizationURL(state string, r oauthmodel.AuthorizationCodeRequest) string {
	var sb strings.Builder
	sb.WriteString(b.baseURL())
	sb.WriteString("/")
	sb.WriteString(r.TenantID)
	if r.APIVersion == oauthmodel.APIVersionV2 {
		sb.WriteString("/oauth2/v2.0/authorize")
	} else {
		sb.WriteString("/oauth2/authorize")
	}
	sb.WriteString("?response_type=code&client_id=")
	sb.WriteString(r.ClientID)
	sb.WriteString("&redirect_uri=")
	sb.WriteString(encodeRedirectURI(r.RedirectURI))
	sb.WriteString("&state=")
	sb.WriteString(state)
	sb.WriteString("&prompt=")
	sb.WriteString(string(r.Prompt))
	if r.APIVersion == oauthmodel.APIVersionV2 {
		sb.WriteString("&response_mode=query")
	}
	if len(r.Scopes) > 0 {
		sb.WriteString("&scope=")
		sb.WriteString(encodeScopes(r.Scopes))
	}
	return sb.String()
}

// AdminConsentURL builds the URL that starts the tenant-admin consent flow.
// V1 reuses the authorization endpoint with prompt=admin_consent; V2 has a
// dedicated /adminconsent endpoint.
func (b *Builder) AdminConsentURL(state string, r oauthmodel.AdminConsentRequest) string {
	var sb strings.Builder
	sb.WriteString(b.baseURL())
	sb.WriteString("/")
	sb.WriteString(r.TenantID)
	if r.APIVersion == oauthmodel.APIVersionV2 {
		sb.WriteString("/adminconsent?client_id=")
		sb.WriteString(r.ClientID)
		sb.WriteString("&redirect_uri=")
		sb.WriteString(encodeRedirectURI(r.RedirectURI))
		sb.WriteString("&state=")
		sb.WriteString(state)
		sb.WriteString("&prompt=login")
		return sb.String()
	}
	sb.WriteString("/oauth2/authorize?response_type=code&client_id=")
	sb.WriteString(r.ClientID)
	sb.WriteString("&redirect_uri=")
	sb.WriteString(encodeRedirectURI(r.RedirectURI))
	sb.WriteString("&state=")
	sb.WriteString(state)
	sb.WriteString("&prompt=admin_consent")
	return sb.String()
}

// TokenURL builds the token endpoint URL for the request's tenant and
// version.
func (b *Builder) TokenURL(r oauthmodel.TokenRequest) string {
	if r.APIVersion == oauthmodel.APIVersionV2 {
		return b.baseURL() + "/" + r.TenantID + "/oauth2/v2.0/token"
	}
	return b.baseURL() + "/" + r.TenantID + "/oauth2/token"
}

// TokenBody builds the x-www-form-urlencoded body for the token request.
// client_secret is always present, even when empty. The grant type follows
// solely from the presence of an authorization code; resource and scope are
// appended whenever supplied, independent of version and grant.
func (b *Builder) TokenBody(r oauthmodel.TokenRequest) string {
	var sb strings.Builder
	sb.WriteString("client_id=")
	sb.WriteString(r.ClientID)
	sb.WriteString("&client_secret=")
	sb.WriteString(url.QueryEscape(r.ClientSecret))
	sb.WriteString("&redirect_uri=")
	sb.WriteString(encodeRedirectURI(r.RedirectURI))
	if r.GrantType() == oauthmodel.AuthorizationCodeGrant {
		sb.WriteString("&grant_type=authorization_code&code=")
		sb.WriteString(url.QueryEscape(r.AuthorizationCode))
	} else {
		sb.WriteString("&grant_type=client_credentials")
	}
	if r.ResourceURI != "" {
		sb.WriteString("&resource=")
		sb.WriteString(url.QueryEscape(r.ResourceURI))
	}
	if len(r.Scopes) > 0 {
		sb.WriteString("&scope=")
		sb.WriteString(encodeScopes(r.Scopes))
	}
	return sb.String()
}

// encodeRedirectURI leaves the out-of-band sentinel untouched. The provider
// expects it verbatim; QueryEscape would mangle the colons.
func encodeRedirectURI(redirectURI string) string {
	if redirectURI == oauthmodel.OutOfBandRedirectURI {
		return redirectURI
	}
	return url.QueryEscape(redirectURI)
}

// encodeScopes joins scopes with a single space (RFC 6749 section 3.3) and
// percent-encodes the result.
func encodeScopes(scopes []string) string {
	return url.QueryEscape(strings.Join(scopes, " "))
}
