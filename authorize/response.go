package authorize

import (
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-auth-client/internal/utils"
	"github.com/jrsteele09/go-auth-client/oauthmodel"
)

// ParseResponse extracts the recognized authorization parameters from the
// query string of the final redirected URL and applies the anti-forgery
// acceptance rule:
//
//   - the result is trusted when its state equals generatedState, or when the
//     provider returned an error (an error redirect may legitimately lack the
//     state, so errors always surface);
//   - a state mismatch without an error is logged at warning level and
//     suppressed: the return is nil with no error;
//   - a redirect with none of the recognized parameters yields nil.
func ParseResponse(logger zerolog.Logger, finalURL, generatedState string) (*oauthmodel.AuthorizationResult, error) {
	parsed, err := url.Parse(finalURL)
	if err != nil {
		return nil, errors.Wrap(err, "[ParseResponse] parsing redirect URL")
	}

	values, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return nil, errors.Wrap(err, "[ParseResponse] parsing redirect query")
	}

	result := &oauthmodel.AuthorizationResult{}
	for key, target := range map[string]**string{
		"error":             &result.Error,
		"error_description": &result.ErrorDescription,
		"code":              &result.AuthorizationCode,
		"admin_consent":     &result.AdminConsent,
		"session_state":     &result.SessionState,
		"tenant":            &result.Tenant,
		"state":             &result.State,
	} {
		if values.Has(key) {
			*target = utils.Ptr(values.Get(key))
		}
	}

	if result.Empty() {
		return nil, nil
	}

	if result.Error == nil && utils.Value(result.State) != generatedState {
		logger.Warn().
			Str("expected_state", generatedState).
			Str("received_state", utils.Value(result.State)).
			Msg("authorization response state mismatch, discarding response")
		return nil, nil
	}

	return result, nil
}
