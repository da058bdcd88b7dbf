package token

// Bundle represents the response from an OAuth2 token request as defined in
// RFC 6749. Fields absent from the provider's response are nil, never
// defaulted; a fully empty bundle is a legal (if useless) response and is not
// treated as an error by this layer.
type Bundle struct {
	// AccessToken is the token used to access protected resources.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken *string `json:"access_token,omitempty"`

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Only present when offline access was granted.
	// Security: Should be stored securely; never logged.
	RefreshToken *string `json:"refresh_token,omitempty"`

	// IDToken is the OpenID Connect ID token containing user identity
	// claims. Only present when the "openid" scope was requested.
	IDToken *string `json:"id_token,omitempty"`

	// TokenType indicates how to use the access token, normally "Bearer".
	TokenType *string `json:"token_type,omitempty"`
}

// Empty reports whether the provider returned none of the expected fields.
func (b *Bundle) Empty() bool {
	return b.AccessToken == nil && b.RefreshToken == nil && b.IDToken == nil && b.TokenType == nil
}
