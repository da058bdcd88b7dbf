// Package capturefakes provides a canned-response capturer for tests.
package capturefakes

import "context"

// FakeCapturer returns a preset final URL instead of driving a browser.
type FakeCapturer struct {
	FinalURL string
	Err      error

	// CapturedAuthURL records the last URL passed to Capture.
	CapturedAuthURL string

	// FinalURLFunc, when set, derives the final URL from the
	// authorization URL (e.g. to echo its state parameter back).
	FinalURLFunc func(authURL string) string
}

// NewFakeCapturer creates a fake that answers with finalURL.
func NewFakeCapturer(finalURL string) *FakeCapturer {
	return &FakeCapturer{FinalURL: finalURL}
}

// Capture implements capture.RedirectCapturer.
func (f *FakeCapturer) Capture(_ context.Context, authURL string) (string, error) {
	f.CapturedAuthURL = authURL
	if f.Err != nil {
		return "", f.Err
	}
	if f.FinalURLFunc != nil {
		return f.FinalURLFunc(authURL), nil
	}
	return f.FinalURL, nil
}
