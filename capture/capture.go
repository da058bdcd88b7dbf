// Package capture obtains the final redirected URL of an interactive
// authorization flow. Implementations open the authorization URL in some
// user-facing surface and block until a URL carrying a terminal parameter
// (error, code or admin_consent) is reached.
package capture

import (
	"context"
	"net/url"
	"strings"
)

// RedirectCapturer is the contract between the flow orchestrators and the
// interactive surface. Capture blocks until the user completes or abandons
// the interaction; cancellation, if supported at all, comes from the context.
type RedirectCapturer interface {
	Capture(ctx context.Context, authURL string) (finalURL string, err error)
}

// terminal parameters that mark the end of an authorization interaction.
var terminalParams = []string{"error", "code", "admin_consent"}

// IsTerminalURL reports whether the URL's query or fragment carries one of
// the parameters that end an authorization interaction.
func IsTerminalURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	for _, part := range []string{u.RawQuery, u.Fragment} {
		if part == "" {
			continue
		}
		values, err := url.ParseQuery(strings.TrimPrefix(part, "?"))
		if err != nil {
			continue
		}
		for _, param := range terminalParams {
			if values.Has(param) {
				return true
			}
		}
	}
	return false
}
