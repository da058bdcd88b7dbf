package oauthmodel

// Prompt controls the login prompt behaviour requested from the authorization
// endpoint via the "prompt" query parameter.
type Prompt string

const (
	// PromptLogin forces the user to re-enter credentials even if a session exists.
	PromptLogin Prompt = "login"

	// PromptConsent forces the consent screen to be shown after sign-in.
	PromptConsent Prompt = "consent"

	// PromptNone suppresses all interactive prompts. The request fails with
	// interaction_required if the provider cannot satisfy it silently.
	PromptNone Prompt = "none"
)

// APIVersion selects between the two generations of endpoint shapes exposed
// by the identity platform. They differ in path layout and in which token
// request parameters are honoured (resource for V1, scope for V2).
type APIVersion string

const (
	// APIVersionV1 uses /{tenant}/oauth2/... paths and resource-based access.
	APIVersionV1 APIVersion = "v1"

	// APIVersionV2 uses /{tenant}/oauth2/v2.0/... paths and scope-based access.
	APIVersionV2 APIVersion = "v2"
)

// GrantType represents the OAuth 2.0 grant type sent to the token endpoint.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	AuthorizationCodeGrant GrantType = "authorization_code"

	// ClientCredentialsGrant authenticates the application itself with no
	// user context, using only the client id and secret.
	ClientCredentialsGrant GrantType = "client_credentials"
)

const (
	// DefaultTenantID is the multi-tenant pseudo tenant accepted by both
	// endpoint versions.
	DefaultTenantID = "common"

	// OutOfBandRedirectURI is the sentinel redirect for clients without a
	// reachable redirect endpoint. It is emitted verbatim, never
	// percent-encoded, to match the provider's expected wire format.
	OutOfBandRedirectURI = "urn:ietf:wg:oauth:2.0:oob"
)
