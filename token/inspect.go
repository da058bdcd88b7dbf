package token

import (
	"errors"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/jrsteele09/go-auth-client/internal/utils"
)

// IDTokenClaims holds the commonly inspected claims of a platform ID token.
// Fields absent from the token are nil.
type IDTokenClaims struct {
	Issuer            *string `json:"iss,omitempty"`
	Subject           *string `json:"sub,omitempty"`
	Audience          *string `json:"aud,omitempty"`
	TenantID          *string `json:"tid,omitempty"`
	PreferredUsername *string `json:"preferred_username,omitempty"`
	Name              *string `json:"name,omitempty"`
	ObjectID          *string `json:"oid,omitempty"`
	UPN               *string `json:"upn,omitempty"`
}

// InspectIDToken parses an ID token without verifying its signature and
// returns its common claims. It exists for display and diagnostics only;
// it is NOT a validation step and must never gate authorization decisions.
func InspectIDToken(rawToken string) (*IDTokenClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, errors.New("empty token")
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("error extracting claims")
	}

	result := &IDTokenClaims{}
	for key, target := range map[string]**string{
		"iss":                &result.Issuer,
		"sub":                &result.Subject,
		"aud":                &result.Audience,
		"tid":                &result.TenantID,
		"preferred_username": &result.PreferredUsername,
		"name":               &result.Name,
		"oid":                &result.ObjectID,
		"upn":                &result.UPN,
	} {
		if value, ok := claims[key].(string); ok {
			*target = utils.Ptr(value)
		}
	}
	return result, nil
}
