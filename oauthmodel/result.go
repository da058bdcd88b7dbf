package oauthmodel

// AuthorizationResult holds the parameters returned on the redirect URI after
// an authorization or admin-consent interaction. Only parameters actually
// present in the redirect are populated; absence is distinct from an empty
// string.
//
// When Error is set the success fields are unreliable and should not be used.
type AuthorizationResult struct {
	// Error is the OAuth2 error code, e.g. "access_denied".
	Error *string `json:"error,omitempty"`

	// ErrorDescription is the human-readable companion to Error.
	ErrorDescription *string `json:"error_description,omitempty"`

	// AuthorizationCode is the one-time code to exchange at the token
	// endpoint.
	AuthorizationCode *string `json:"code,omitempty"`

	// AdminConsent is "True" when a tenant administrator granted consent.
	AdminConsent *string `json:"admin_consent,omitempty"`

	// SessionState is an opaque session identifier echoed by the provider.
	SessionState *string `json:"session_state,omitempty"`

	// Tenant is the tenant that processed the request, returned by the
	// admin-consent endpoint.
	Tenant *string `json:"tenant,omitempty"`

	// State is the anti-forgery token echoed back by the provider.
	State *string `json:"state,omitempty"`
}

// Empty reports whether no recognized parameter was present at all.
func (r *AuthorizationResult) Empty() bool {
	return r.Error == nil &&
		r.ErrorDescription == nil &&
		r.AuthorizationCode == nil &&
		r.AdminConsent == nil &&
		r.SessionState == nil &&
		r.Tenant == nil &&
		r.State == nil
}
