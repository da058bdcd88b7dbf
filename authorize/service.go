// Package authorize orchestrates the interactive OAuth2 flows against the
// identity platform: authorization code, client credentials and tenant-admin
// consent.
package authorize

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-auth-client/capture"
	"github.com/jrsteele09/go-auth-client/endpoints"
	"github.com/jrsteele09/go-auth-client/oauthmodel"
	"github.com/jrsteele09/go-auth-client/token"
)

// Service composes URL building, redirect capture, response validation and
// token exchange into the three public flows. Instances hold no mutable
// state between calls; concurrent use is safe as long as the capturer
// tolerates concurrent interactions.
type Service struct {
	endpoints *endpoints.Builder
	capturer  capture.RedirectCapturer
	exchanger *token.Exchanger
	logger    zerolog.Logger
	newState  func() string // state generator (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithBaseURL overrides the base authentication host.
func WithBaseURL(baseURL string) ServiceOption {
	return func(s *Service) {
		s.endpoints = &endpoints.Builder{BaseURL: baseURL}
	}
}

// WithExchanger sets the token exchange client.
func WithExchanger(exchanger *token.Exchanger) ServiceOption {
	return func(s *Service) {
		s.exchanger = exchanger
	}
}

// WithLogger sets the logger used for flow diagnostics and the
// state-mismatch warning.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithStateGenerator sets the anti-forgery state generator (primarily for
// testing).
func WithStateGenerator(newState func() string) ServiceOption {
	return func(s *Service) {
		s.newState = newState
	}
}

// NewService initializes a Service. The capturer is required; everything
// else has production defaults.
func NewService(capturer capture.RedirectCapturer, options ...ServiceOption) (*Service, error) {
	if capturer == nil {
		return nil, errors.New("[NewService] capturer is required")
	}

	service := &Service{
		endpoints: endpoints.New(),
		capturer:  capturer,
		exchanger: token.NewExchanger(),
		logger:    zerolog.Nop(),
		newState:  uuid.NewString,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// GetAuthorizationCode runs the interactive authorization code flow: it
// generates a fresh state, opens the authorization URL through the capturer,
// and validates the redirected response. A nil result with a nil error means
// the response was discarded (state mismatch, already logged) or carried no
// recognized parameters.
func (s *Service) GetAuthorizationCode(ctx context.Context, req oauthmodel.AuthorizationCodeRequest) (*oauthmodel.AuthorizationResult, error) {
	if req.ClientID == "" {
		return nil, oauthmodel.ErrMissingClientID
	}
	req.Normalize()

	state := s.newState()
	authURL := s.endpoints.AuthorizationURL(state, req)

	s.logger.Debug().Str("tenant_id", req.TenantID).Str("api_version", string(req.APIVersion)).Msg("starting authorization code flow")

	finalURL, err := s.capturer.Capture(ctx, authURL)
	if err != nil {
		return nil, errors.Wrap(err, "[GetAuthorizationCode] capturing redirect")
	}

	return ParseResponse(s.logger, finalURL, state)
}

// GrantAdminConsent runs the tenant-admin consent flow. The result carries
// admin_consent and tenant on success, or the provider error.
func (s *Service) GrantAdminConsent(ctx context.Context, req oauthmodel.AdminConsentRequest) (*oauthmodel.AuthorizationResult, error) {
	if req.ClientID == "" {
		return nil, oauthmodel.ErrMissingClientID
	}
	req.Normalize()

	state := s.newState()
	consentURL := s.endpoints.AdminConsentURL(state, req)

	s.logger.Debug().Str("tenant_id", req.TenantID).Str("api_version", string(req.APIVersion)).Msg("starting admin consent flow")

	finalURL, err := s.capturer.Capture(ctx, consentURL)
	if err != nil {
		return nil, errors.Wrap(err, "[GrantAdminConsent] capturing redirect")
	}

	return ParseResponse(s.logger, finalURL, state)
}

// GetToken exchanges an authorization code, or the client credentials when
// no code is supplied, for a token bundle. No browser interaction takes
// place.
func (s *Service) GetToken(ctx context.Context, req oauthmodel.TokenRequest) (*token.Bundle, error) {
	if req.ClientID == "" {
		return nil, oauthmodel.ErrMissingClientID
	}
	req.Normalize()

	s.logger.Debug().
		Str("tenant_id", req.TenantID).
		Str("grant_type", string(req.GrantType())).
		Str("api_version", string(req.APIVersion)).
		Msg("requesting token")

	bundle, err := s.exchanger.Exchange(ctx, s.endpoints.TokenURL(req), s.endpoints.TokenBody(req))
	if err != nil {
		return nil, errors.Wrap(err, "[GetToken] exchanging token")
	}
	return bundle, nil
}
