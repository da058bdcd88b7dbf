package main

// GlobalOptions are the flags shared by every subcommand.
type GlobalOptions struct {
	ClientID    string   `long:"client-id" env:"CLIENT_ID" required:"true" description:"Application (client) ID"`
	TenantID    string   `long:"tenant-id" env:"TENANT_ID" default:"common" description:"Directory tenant ID"`
	RedirectURI string   `long:"redirect-uri" env:"REDIRECT_URI" description:"Redirect URI (defaults to the out-of-band sentinel)"`
	Scopes      []string `long:"scope" env:"SCOPES" env-delim:" " description:"Requested scope (repeatable)"`
	APIV2       bool     `long:"v2" env:"API_V2" description:"Use the v2.0 endpoints"`
	BaseURL     string   `long:"base-url" env:"AUTH_BASE_URL" description:"Base authentication host override"`
	ListenAddr  string   `long:"listen-addr" env:"CALLBACK_LISTEN_ADDR" description:"Loopback callback listen address"`
	Verbose     bool     `long:"verbose" short:"v" description:"Enable debug logging"`
}

// LoginCommand runs the interactive authorization code flow.
type LoginCommand struct {
	Prompt string `long:"prompt" default:"login" choice:"login" choice:"consent" choice:"none" description:"Login prompt behaviour"`
}

// TokenCommand exchanges a code or the client credentials for tokens.
type TokenCommand struct {
	ClientSecret      string `long:"client-secret" env:"CLIENT_SECRET" description:"Client secret (never logged)"`
	AuthorizationCode string `long:"code" description:"Authorization code; omit for the client_credentials grant"`
	ResourceURI       string `long:"resource" description:"v1 resource URI"`
	ShowClaims        bool   `long:"show-claims" description:"Print unverified ID token claims when present"`
}

// AdminConsentCommand runs the tenant-admin consent flow.
type AdminConsentCommand struct{}
