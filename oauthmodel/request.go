package oauthmodel

// AuthorizationCodeRequest holds parameters for an interactive authorization
// code request. Zero values for TenantID, RedirectURI, Prompt and APIVersion
// are replaced with the platform defaults by Normalize.
type AuthorizationCodeRequest struct {
	// ClientID identifies the application requesting authorization.
	// Required: Yes
	ClientID string

	// TenantID selects the directory tenant to authenticate against.
	// Default: "common"
	TenantID string

	// RedirectURI is where the authorization response will be sent.
	// Default: the out-of-band sentinel urn:ietf:wg:oauth:2.0:oob
	RedirectURI string

	// Scopes are the permissions being requested. Joined with a single
	// space before encoding; omitted from the URL entirely when empty.
	Scopes []string

	// Prompt controls the interactive prompt behaviour.
	// Default: PromptLogin
	Prompt Prompt

	// APIVersion selects the endpoint generation.
	// Default: APIVersionV1
	APIVersion APIVersion
}

// Normalize fills platform defaults for unset fields.
func (r *AuthorizationCodeRequest) Normalize() {
	if r.TenantID == "" {
		r.TenantID = DefaultTenantID
	}
	if r.RedirectURI == "" {
		r.RedirectURI = OutOfBandRedirectURI
	}
	if r.Prompt == "" {
		r.Prompt = PromptLogin
	}
	if r.APIVersion == "" {
		r.APIVersion = APIVersionV1
	}
}

// AdminConsentRequest holds parameters for the tenant-admin consent flow.
type AdminConsentRequest struct {
	ClientID    string
	TenantID    string
	RedirectURI string
	APIVersion  APIVersion
}

// Normalize fills platform defaults for unset fields.
func (r *AdminConsentRequest) Normalize() {
	if r.TenantID == "" {
		r.TenantID = DefaultTenantID
	}
	if r.RedirectURI == "" {
		r.RedirectURI = OutOfBandRedirectURI
	}
	if r.APIVersion == "" {
		r.APIVersion = APIVersionV1
	}
}

// TokenRequest holds parameters for the OAuth2 token request. The grant type
// is never set directly: a non-empty AuthorizationCode selects the
// authorization_code grant, an empty one selects client_credentials,
// independent of APIVersion.
type TokenRequest struct {
	// ClientID identifies the OAuth2 client making the request.
	// Required: Yes (for all grant types)
	ClientID string

	// ClientSecret is the secret credential for confidential clients.
	// Required for V1; V2 native/public apps leave it empty. An empty
	// value is still sent as client_secret= on the wire.
	// Security: Never log or expose this value
	ClientSecret string

	// TenantID selects the directory tenant. Default: "common"
	TenantID string

	// RedirectURI must match the one used in the authorization request.
	// Default: the out-of-band sentinel urn:ietf:wg:oauth:2.0:oob
	RedirectURI string

	// ResourceURI is the V1 resource identifier the token should grant
	// access to. Ignored by V2 endpoints; included whenever set.
	ResourceURI string

	// Scopes are the V2 permissions requested. Included whenever
	// non-empty, regardless of APIVersion.
	Scopes []string

	// AuthorizationCode is the code obtained from the authorization
	// endpoint. Empty means the client_credentials grant.
	AuthorizationCode string

	// APIVersion selects the endpoint generation. Default: APIVersionV1
	APIVersion APIVersion
}

// Normalize fills platform defaults for unset fields.
func (r *TokenRequest) Normalize() {
	if r.TenantID == "" {
		r.TenantID = DefaultTenantID
	}
	if r.RedirectURI == "" {
		r.RedirectURI = OutOfBandRedirectURI
	}
	if r.APIVersion == "" {
		r.APIVersion = APIVersionV1
	}
}

// GrantType returns the grant selected by the presence of an authorization
// code.
func (r *TokenRequest) GrantType() GrantType {
	if r.AuthorizationCode != "" {
		return AuthorizationCodeGrant
	}
	return ClientCredentialsGrant
}
